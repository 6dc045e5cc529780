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

package main

import (
	"flag"
	"os"

	"github.com/NeilJiang-tech/uniconv/go/cmd/uniconv/command"
	"github.com/NeilJiang-tech/uniconv/go/log"
)

func main() {
	// Pick up glog's flags from the standard flag set.
	command.Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// Mark the standard flag set parsed so glog does not complain about
	// logging before flag.Parse.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := command.Root.Execute(); err != nil {
		log.Exit(err)
	}
}
