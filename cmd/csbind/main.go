package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/gops/agent"
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	"github.com/viant/csbind/cmd"
	"github.com/viant/csbind/cmd/env"
)

var Version = "dev"
var (
	BuildTimeInS string
)

func init() {
	if BuildTimeInS != "" {
		seconds, err := strconv.Atoi(BuildTimeInS)
		if err != nil {
			panic(err)
		}

		env.BuildTime = time.Unix(int64(seconds), 0)
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if hasFlag(args, "--gops") {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatal(err)
		}
		defer agent.Close()
	}
	if err := cmd.New(Version, args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}
