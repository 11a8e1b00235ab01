// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/header"
	"github.com/driftmon/driftmon/pkg/serializer"
	pkgversion "github.com/driftmon/driftmon/pkg/version"
)

// VersionReport is the document written by the version command.
type VersionReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Build pkgversion.Info `json:"build" yaml:"build"`
}

func versionCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    formatFlag.Name,
				Aliases: formatFlag.Aliases,
				Usage:   "output format (text, json, yaml)",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := pkgversion.NewInfo(version, commit, date)
			if cmd.String("format") == "text" {
				_, err := io.WriteString(d.out, info.String()+"\n")
				return err
			}

			outFormat, err := serializer.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			report := &VersionReport{Build: info}
			report.Init(header.KindVersion, header.APIVersion, info.Version, time.Now())
			return serializer.NewWriter(outFormat, d.out).Serialize(ctx, report)
		},
	}
}
