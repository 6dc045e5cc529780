/*
Copyright 2024 The Uniconv Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/NeilJiang-tech/uniconv/go/cmd/uniconv/internal/unitfile"
	"github.com/NeilJiang-tech/uniconv/go/log"
	"github.com/NeilJiang-tech/uniconv/go/utf"
)

var (
	validateArgs = struct {
		Form string
	}{}

	Validate = &cobra.Command{
		Use:   "validate --form <form> <file>...",
		Short: "Check unit files for well-formedness.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commandValidate,
	}
)

func commandValidate(cmd *cobra.Command, args []string) error {
	form, err := utf.ParseForm(validateArgs.Form)
	if err != nil {
		return err
	}
	order, err := unitfile.ParseOrder(byteOrderFlag)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header([]string{"File", "Units", "Verdict"})

	var bad int
	for _, path := range args {
		units, verdict, err := validateFile(path, form, order)
		if err != nil {
			log.ErrorS("unit file unreadable", "path", path, "error", err)
			if err := table.Append([]string{path, "-", "unreadable"}); err != nil {
				return err
			}
			bad++
			continue
		}
		if verdict != utf.WellFormed {
			bad++
		}
		if err := table.Append([]string{path, strconv.Itoa(units), verdict.String()}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d files are not well-formed", bad, len(args))
	}
	return nil
}

// validateFile loads path as a buffer of form units and classifies it.
func validateFile(path string, form utf.Form, order unitfile.Order) (units int, verdict utf.Verdict, err error) {
	switch form {
	case utf.Form16:
		src, swap, err := unitfile.Load16(path, order)
		if err != nil {
			return 0, 0, err
		}
		return utf.Len(src), utf.Validate16(src, swap), nil
	case utf.Form32:
		src, swap, err := unitfile.Load32(path, order)
		if err != nil {
			return 0, 0, err
		}
		return utf.Len(src), utf.Validate32(src, swap), nil
	default:
		src, err := unitfile.Load8(path)
		if err != nil {
			return 0, 0, err
		}
		return utf.Len(src), utf.Validate8(src), nil
	}
}

func init() {
	Validate.Flags().StringVar(&validateArgs.Form, "form", "", "serialization form of the files: 8, 16, or 32")
	Validate.MarkFlagRequired("form")

	Root.AddCommand(Validate)
}
