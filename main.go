package main

import (
	"github.com/jowi/testlib/runner"

	_ "github.com/jowi/testlib/selftests"
)

func main() {
	runner.MainDefault()
}
