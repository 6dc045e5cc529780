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
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/NeilJiang-tech/uniconv/go/cmd/uniconv/internal/unitfile"
	"github.com/NeilJiang-tech/uniconv/go/log"
	"github.com/NeilJiang-tech/uniconv/go/utf"
)

var (
	inspectArgs = struct {
		Form string
	}{}

	Inspect = &cobra.Command{
		Use:   "inspect --form <form> <file>...",
		Short: "Report unit counts, projected sizes, and well-formedness of unit files.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commandInspect,
	}
)

func commandInspect(cmd *cobra.Command, args []string) error {
	form, err := utf.ParseForm(inspectArgs.Form)
	if err != nil {
		return err
	}
	order, err := unitfile.ParseOrder(byteOrderFlag)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header([]string{"File", "Size", "Units", "UTF-8", "UTF-16", "UTF-32", "Verdict"})

	var failed int
	for _, path := range args {
		row, err := inspectFile(path, form, order)
		if err != nil {
			log.Errorf("%v", err)
			failed++
			continue
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("failed to inspect %d of %d files", failed, len(args))
	}
	return nil
}

// inspectFile builds one table row: on-disk size, unit count, and the unit
// counts the buffer would occupy in each serialization form.
func inspectFile(path string, form utf.Form, order unitfile.Order) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	var n, in8, in16, in32 int
	var verdict utf.Verdict

	switch form {
	case utf.Form16:
		src, swap, err := unitfile.Load16(path, order)
		if err != nil {
			return nil, err
		}
		n = utf.Len(src)
		in8, in16, in32 = utf.Size16In8(src, swap), n, utf.Size16In32(src, swap)
		verdict = utf.Validate16(src, swap)
	case utf.Form32:
		src, swap, err := unitfile.Load32(path, order)
		if err != nil {
			return nil, err
		}
		n = utf.Len(src)
		in8, in16, in32 = utf.Size32In8(src, swap), utf.Size32In16(src, swap), n
		verdict = utf.Validate32(src, swap)
	default:
		src, err := unitfile.Load8(path)
		if err != nil {
			return nil, err
		}
		n = utf.Len(src)
		in8, in16, in32 = n, utf.Size8In16(src), utf.Size8In32(src)
		verdict = utf.Validate8(src)
	}

	return []string{
		path,
		humanize.IBytes(uint64(info.Size())),
		humanize.Comma(int64(n)),
		humanize.Comma(int64(in8)),
		humanize.Comma(int64(in16)),
		humanize.Comma(int64(in32)),
		verdict.String(),
	}, nil
}

func init() {
	Inspect.Flags().StringVar(&inspectArgs.Form, "form", "", "serialization form of the files: 8, 16, or 32")
	Inspect.MarkFlagRequired("form")

	Root.AddCommand(Inspect)
}
