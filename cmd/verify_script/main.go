// Package main provides a script verification tool for checking dialogue scripts
// against the story configuration without starting the graphical application.
//
// Usage:
//
//	go run cmd/verify_script/main.go [flags]
//
// Flags:
//
//	--script <path>   Dialogue script to check (default: taken from the story config)
//	--config <path>   Story configuration (default: "data/story.yaml")
//	--play            Play the whole story headlessly and print every line
//	--strict          Exit with status 1 on parse notices or missing scenes
//	--verbose         Enable verbose logging
//
// Purpose:
//   - Find malformed markers, orphan lines and duplicate scenes before shipping
//   - Verify that every scene in sceneOrder exists in the script
//   - Check the transition chain from startScene to the end of the story
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/vnovel/pkg/config"
	"github.com/decker502/vnovel/pkg/dialogue"
	"github.com/decker502/vnovel/pkg/script"
)

var (
	scriptFlag  = flag.String("script", "", "Dialogue script to check (default: from story config)")
	configFlag  = flag.String("config", "data/story.yaml", "Story configuration file")
	playFlag    = flag.Bool("play", false, "Play the whole story and print every line")
	strictFlag  = flag.Bool("strict", false, "Fail on parse notices or missing scenes")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// maxSteps 防止配置错误时无限推进
const maxSteps = 100000

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	problems, err := run(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *strictFlag && problems > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", problems)
		os.Exit(1)
	}
}

// run 执行检查，返回发现的问题数量
func run(out io.Writer) (int, error) {
	story, err := config.LoadStoryConfig(*configFlag)
	if err != nil {
		return 0, err
	}

	scriptPath := *scriptFlag
	if scriptPath == "" {
		scriptPath = story.Script
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open script %s: %w", scriptPath, err)
	}
	defer f.Close()

	table, notices, err := script.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse script %s: %w", scriptPath, err)
	}

	fmt.Fprintf(out, "Script: %s\n", scriptPath)
	fmt.Fprintf(out, "Scenes: %d, lines: %d\n\n", len(table.Scenes()), table.LineCount())
	for _, id := range table.Scenes() {
		scene, _ := table.Scene(id)
		closed := ""
		if !scene.Closed {
			closed = " (no [End])"
		}
		fmt.Fprintf(out, "  [%s] %d line(s)%s\n", id, len(scene.Lines), closed)
	}

	problems := len(notices)
	if len(notices) > 0 {
		fmt.Fprintf(out, "\nNotices:\n")
		for _, n := range notices {
			fmt.Fprintf(out, "  %s\n", n)
		}
	}

	order, err := dialogue.NewSceneOrder(story.SceneOrder...)
	if err != nil {
		return problems, err
	}

	missing := order.Missing(table)
	problems += len(missing)
	for _, id := range missing {
		fmt.Fprintf(out, "\nMissing scene: %s is listed in sceneOrder but not in the script\n", id)
	}
	for _, id := range table.Scenes() {
		if !order.Contains(id) {
			fmt.Fprintf(out, "\nUnreachable scene: %s is not listed in sceneOrder\n", id)
		}
	}

	if *playFlag {
		if err := play(out, table, order, story); err != nil {
			fmt.Fprintf(out, "\nPlayback stopped: %v\n", err)
			problems++
		}
	}

	return problems, nil
}

// play 从起始场景推进到对话结束，打印每一句台词
func play(out io.Writer, table *script.Table, order *dialogue.SceneOrder, story *config.StoryConfig) error {
	engine := dialogue.NewEngine(order)
	engine.SetTable(table)
	engine.OnLine(func(l script.Line) {
		fmt.Fprintf(out, "  %s\n", l.Text)
	})
	engine.OnSceneTransition(func(tr dialogue.Transition) {
		if !tr.Terminal {
			fmt.Fprintf(out, "\n== %s ==\n", story.SceneTitle(tr.To))
		}
	})

	fmt.Fprintf(out, "\n== %s ==\n", story.SceneTitle(story.StartScene))
	if _, err := engine.SetScene(story.StartScene); err != nil {
		return err
	}

	for i := 0; i < maxSteps; i++ {
		res, err := engine.Advance()
		if err != nil {
			return err
		}
		if res.State == dialogue.StateFinished {
			fmt.Fprintf(out, "\n%s\n", story.EndMessage)
			return nil
		}
	}
	return errors.New("story did not finish")
}
