// Copyright 2025 The Kestrel Authors
// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kestrel. If not, see <http://www.gnu.org/licenses/>.

// gasched prints the gas schedule the interpreter would run with, including
// any overrides from a config file.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/kestrelvm/kestrel/execution/vm"
)

var keyDescriptions = map[string]string{
	vm.GasKeyCallCold:       "account access for a cold call target",
	vm.GasKeyCallWarm:       "account access for a warm call target",
	vm.GasKeyCallOperand:    "per stack operand consumed by a call opcode",
	vm.GasKeyCallValueXfer:  "surcharge for a nonzero value transfer",
	vm.GasKeyCallNewAccount: "surcharge when a value transfer creates the recipient",
	vm.GasKeyMinCalleeGas:   "minimum gas that must be forwardable to a callee",
	vm.GasKeyReturnDataLoad: "RETURNDATALOAD constant cost",
	vm.GasKeyMemory:         "linear memory expansion cost per word",
}

func main() {
	app := &cli.App{
		Name:  "gasched",
		Usage: "show the effective call gas schedule",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "interpreter config file with gas overrides",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("gasched failed")
	}
}

func run(ctx *cli.Context) error {
	var schedule *vm.GasSchedule
	if path := ctx.String("config"); path != "" {
		cfg, err := vm.LoadConfig(path)
		if err != nil {
			return err
		}
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(lvl)
		}
		schedule = cfg.Schedule()
	}

	defaults := vm.DefaultSchedule()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		effective := schedule.GetOr(key, defaults[key])
		line := fmt.Sprintf("%-18s %7d", key, effective)
		if effective != defaults[key] {
			line += fmt.Sprintf("  (default %d)", defaults[key])
		}
		fmt.Println(line + "  " + keyDescriptions[key])
	}
	if schedule.HasOverrides() {
		logrus.WithField("overrides", len(schedule.Overrides)).Info("custom gas schedule active")
	}
	return nil
}
