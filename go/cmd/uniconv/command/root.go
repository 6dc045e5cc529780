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
	"github.com/spf13/cobra"

	"github.com/NeilJiang-tech/uniconv/go/log"
)

var (
	byteOrderFlag string

	Root = &cobra.Command{
		Use:   "uniconv",
		Short: "uniconv converts, validates, and inspects null-terminated Unicode unit files.",
		Long: "uniconv works on files of null-terminated Unicode code units in the 8-bit,\n" +
			"16-bit, and 32-bit serialization forms. It converts between any two forms,\n" +
			"checks files for well-formedness, and reports unit counts and projected\n" +
			"sizes. Ill-formed sequences convert to U+FFFD unless --check is given.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		SilenceUsage: true,
	}
)

func init() {
	log.RegisterFlags(Root.PersistentFlags())

	Root.PersistentFlags().StringVar(&byteOrderFlag, "byte-order", "host",
		"byte order of 16- and 32-bit unit files: host, little, big, or auto (detect from a leading BOM)")
}
