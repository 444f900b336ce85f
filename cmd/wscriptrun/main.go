package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wscript-lang/runtime/internal/rtlog"
)

func main() {
	if err := rtlog.Init(rtlog.Options{
		Enabled: os.Getenv("WSCRIPTRUN_DEBUG") != "",
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to init logging: %v\n", err)
	}
	execute()
}
