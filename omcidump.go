/*
 * Copyright 2018-present Open Networking Foundation

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 * http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"gerrit.opencord.org/omci-decode/common/logger"
	"gerrit.opencord.org/omci-decode/core"
)

func main() {
	opt := core.GetOptions()
	logger.Setup(opt.KafkaBroker, opt.Debuglvl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := core.NewPipeline(opt, render)
	if err := pipeline.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("pipeline: %s", err)
	}
}
