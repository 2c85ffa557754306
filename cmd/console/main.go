// The console command runs an interactive shell for nudging a camera
// and re-rendering a scene, useful for framing a shot before a full
// batch render.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/whitted/raytracer/ppm"
	"github.com/whitted/raytracer/rt"
	"github.com/whitted/raytracer/scenes"
)

type Command struct {
	// Symbol is the canonical name of the command.
	// It should include the leading ":".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State, []string) error
}

// State is the console's working set: the current scene and camera
// placement, mutated in place by command handlers and re-rendered on
// demand.
type State struct {
	sceneName string
	world     rt.World

	width, height int
	fov           float64
	from, to, up  rt.Tuple

	commands []*Command
}

func newState() *State {
	return &State{
		sceneName: "default",
		world:     scenes.Default(),
		width:     400,
		height:    400,
		fov:       math.Pi / 3,
		from:      rt.Point(0, 1.5, -5),
		to:        rt.Point(0, 1, 0),
		up:        rt.Vector(0, 1, 0),
	}
}

func (st *State) camera() rt.Camera {
	return rt.NewCamera(st.width, st.height, st.fov, rt.ViewTransform(st.from, st.to, st.up))
}

// errQuit is a signal to the main loop to quit.
var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "rt> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	state := newState()
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		state.commands = append(state.commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}

	registerCommand(&Command{
		Symbol:       ":scene",
		Aliases:      []string{":sc"},
		ExpectedArgs: []string{"<name>"},
		HelpText:     "Switch to a named scene (default, glass_spheres, cover)",
		Run: func(st *State, args []string) error {
			if len(args) < 1 {
				return errors.New("usage: :scene <name>")
			}
			world, err := scenes.Build(args[0])
			if err != nil {
				return err
			}
			st.sceneName = args[0]
			st.world = world
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":from",
		ExpectedArgs: []string{"<x>", "<y>", "<z>"},
		HelpText:     "Move the camera to a new position",
		Run:          func(st *State, args []string) error { return setTuple(&st.from, args) },
	})
	registerCommand(&Command{
		Symbol:       ":to",
		ExpectedArgs: []string{"<x>", "<y>", "<z>"},
		HelpText:     "Point the camera at a new target",
		Run:          func(st *State, args []string) error { return setTuple(&st.to, args) },
	})
	registerCommand(&Command{
		Symbol:       ":up",
		ExpectedArgs: []string{"<x>", "<y>", "<z>"},
		HelpText:     "Set the camera's up vector",
		Run:          func(st *State, args []string) error { return setTuple(&st.up, args) },
	})
	registerCommand(&Command{
		Symbol:       ":size",
		ExpectedArgs: []string{"<width>", "<height>"},
		HelpText:     "Set the output resolution",
		Run: func(st *State, args []string) error {
			if len(args) < 2 {
				return errors.New("usage: :size <width> <height>")
			}
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			h, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			if w <= 0 || h <= 0 {
				return errors.New("width and height must be positive")
			}
			st.width, st.height = w, h
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":fov",
		ExpectedArgs: []string{"<degrees>"},
		HelpText:     "Set the field of view in degrees",
		Run: func(st *State, args []string) error {
			if len(args) < 1 {
				return errors.New("usage: :fov <degrees>")
			}
			deg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			st.fov = deg * math.Pi / 180
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":render",
		Aliases:      []string{":r"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Render the current camera and scene to a PPM file",
		Run: func(st *State, args []string) error {
			if len(args) < 1 {
				return errors.New("usage: :render <filename>")
			}
			image := st.camera().Render(&st.world)
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := ppm.Encode(f, image); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":env",
		Aliases:  []string{":e"},
		HelpText: "Print the current scene and camera settings",
		Run: func(st *State, args []string) error {
			fmt.Printf("scene:  %s\n", st.sceneName)
			fmt.Printf("size:   %d x %d\n", st.width, st.height)
			fmt.Printf("fov:    %.4f rad\n", st.fov)
			fmt.Printf("from:   (%.4f, %.4f, %.4f)\n", st.from.X, st.from.Y, st.from.Z)
			fmt.Printf("to:     (%.4f, %.4f, %.4f)\n", st.to.X, st.to.Y, st.to.Z)
			fmt.Printf("up:     (%.4f, %.4f, %.4f)\n", st.up.X, st.up.Y, st.up.Z)
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":help",
		Aliases:  []string{":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State, args []string) error {
			return errQuit
		},
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			fmt.Printf("not a command (type :help): %q\n", line)
			continue
		}
		args := strings.Fields(line)
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("unknown command: %v\n", args[0])
			continue
		}
		err = cmd.Run(state, args[1:])
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func setTuple(t *rt.Tuple, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: <x> <y> <z>")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return err
	}
	*t = rt.Tuple{X: x, Y: y, Z: z, W: t.W}
	return nil
}

func showHelp(st *State, args []string) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".rtconsole_history")
}
