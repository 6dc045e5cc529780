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

	"github.com/spf13/cobra"

	"github.com/NeilJiang-tech/uniconv/go/cmd/uniconv/internal/unitfile"
	"github.com/NeilJiang-tech/uniconv/go/log"
	"github.com/NeilJiang-tech/uniconv/go/utf"
)

var (
	convertArgs = struct {
		From  string
		To    string
		Check bool
	}{}

	Convert = &cobra.Command{
		Use:   "convert --from <form> --to <form> <in> <out>",
		Short: "Convert a unit file between serialization forms.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandConvert,
	}
)

// convertResult reports how far a single-pass conversion got.
type convertResult struct {
	read  int
	wrote int
	stop  utf.Stop
}

func commandConvert(cmd *cobra.Command, args []string) error {
	from, err := utf.ParseForm(convertArgs.From)
	if err != nil {
		return err
	}
	to, err := utf.ParseForm(convertArgs.To)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("source and destination are both %v; nothing to convert", from)
	}
	order, err := unitfile.ParseOrder(byteOrderFlag)
	if err != nil {
		return err
	}

	in, out := cmd.Flags().Arg(0), cmd.Flags().Arg(1)
	if log.V(2) {
		log.Infof("converting %s from %v to %v (byte order %v)", in, from, to, order)
	}
	res, err := runConvert(from, to, order, convertArgs.Check, in, out)
	if err != nil {
		return err
	}

	if res.stop != utf.StopTerm {
		log.Warningf("conversion of %v stopped early: %v", in, res.stop)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %v units in, %d %v units out (%v)\n",
		out, res.read, from, res.wrote, to, res.stop)
	return nil
}

// runConvert loads in, transcodes it in a single pass, and stores the result
// to out with a trailing terminator. The destination buffer is sized from the
// advisory estimate, so ill-formed input whose replacements outgrow it ends
// with a partial conversion and a stop of StopDst.
func runConvert(from, to utf.Form, order unitfile.Order, check bool, in, out string) (convertResult, error) {
	var res convertResult

	switch from {
	case utf.Form8:
		src, err := unitfile.Load8(in)
		if err != nil {
			return res, err
		}
		if check {
			if v := utf.Validate8(src); v != utf.WellFormed {
				return res, fmt.Errorf("%s is ill-formed: %v", in, v)
			}
		}
		swap := order.Swap()
		if to == utf.Form16 {
			dst := make([]uint16, utf.Size8In16(src)+1)
			res.wrote, res.read, res.stop = utf.Transcode8To16(dst, src, swap)
			return res, storeChecked16(out, append(dst[:res.wrote], 0), swap, check)
		}
		dst := make([]uint32, utf.Size8In32(src)+1)
		res.wrote, res.read, res.stop = utf.Transcode8To32(dst, src, swap)
		return res, storeChecked32(out, append(dst[:res.wrote], 0), swap, check)

	case utf.Form16:
		src, swap, err := unitfile.Load16(in, order)
		if err != nil {
			return res, err
		}
		if check {
			if v := utf.Validate16(src, swap); v != utf.WellFormed {
				return res, fmt.Errorf("%s is ill-formed: %v", in, v)
			}
		}
		if to == utf.Form8 {
			dst := make([]byte, utf.Size16In8(src, swap)+1)
			res.wrote, res.read, res.stop = utf.Transcode16To8(dst, src, swap)
			return res, storeChecked8(out, append(dst[:res.wrote], 0), check)
		}
		dst := make([]uint32, utf.Size16In32(src, swap)+1)
		res.wrote, res.read, res.stop = utf.Transcode16To32(dst, src, swap)
		return res, storeChecked32(out, append(dst[:res.wrote], 0), swap, check)

	case utf.Form32:
		src, swap, err := unitfile.Load32(in, order)
		if err != nil {
			return res, err
		}
		if check {
			if v := utf.Validate32(src, swap); v != utf.WellFormed {
				return res, fmt.Errorf("%s is ill-formed: %v", in, v)
			}
		}
		if to == utf.Form8 {
			dst := make([]byte, utf.Size32In8(src, swap)+1)
			res.wrote, res.read, res.stop = utf.Transcode32To8(dst, src, swap)
			return res, storeChecked8(out, append(dst[:res.wrote], 0), check)
		}
		dst := make([]uint16, utf.Size32In16(src, swap)+1)
		res.wrote, res.read, res.stop = utf.Transcode32To16(dst, src, swap)
		return res, storeChecked16(out, append(dst[:res.wrote], 0), swap, check)
	}

	return res, fmt.Errorf("unsupported source form %v", from)
}

func storeChecked8(path string, units []byte, check bool) error {
	if check {
		if v := utf.Validate8(units); v != utf.WellFormed {
			return fmt.Errorf("converted output is ill-formed: %v", v)
		}
	}
	return unitfile.Store8(path, units)
}

func storeChecked16(path string, units []uint16, swap, check bool) error {
	if check {
		if v := utf.Validate16(units, swap); v != utf.WellFormed {
			return fmt.Errorf("converted output is ill-formed: %v", v)
		}
	}
	return unitfile.Store16(path, units)
}

func storeChecked32(path string, units []uint32, swap, check bool) error {
	if check {
		if v := utf.Validate32(units, swap); v != utf.WellFormed {
			return fmt.Errorf("converted output is ill-formed: %v", v)
		}
	}
	return unitfile.Store32(path, units)
}

func init() {
	Convert.Flags().StringVar(&convertArgs.From, "from", "", "serialization form of the input file: 8, 16, or 32")
	Convert.Flags().StringVar(&convertArgs.To, "to", "", "serialization form of the output file: 8, 16, or 32")
	Convert.Flags().BoolVar(&convertArgs.Check, "check", false, "refuse ill-formed input and verify the converted output")
	Convert.MarkFlagRequired("from")
	Convert.MarkFlagRequired("to")

	Root.AddCommand(Convert)
}
