// Package shell runs the interactive menu that drives a movie catalog.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/machine"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/storage"
)

type State string

const (
	StateMenu      State = "menu"
	StateOperation State = "operation"
	StateExit      State = "exit"
)

// Exporter writes the catalog as a website
type Exporter interface {
	Export(ctx context.Context, movies []movie.Movie) error
	OutputPath() string
}

type command struct {
	label   string
	handler func(ctx context.Context) error
}

// Option configures a Shell
type Option func(*Shell)

// WithLookup enables adding movies by title through the metadata service
func WithLookup(lookup omdb.IOmdb) Option {
	return func(s *Shell) {
		s.lookup = lookup
	}
}

// WithExporter enables website generation
func WithExporter(exporter Exporter) Option {
	return func(s *Shell) {
		s.exporter = exporter
	}
}

// WithRand sets the source used by the random movie command
func WithRand(r *rand.Rand) Option {
	return func(s *Shell) {
		s.rand = r
	}
}

// Shell reads menu choices from in and writes everything the user sees to out
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	storage  storage.Storage
	lookup   omdb.IOmdb
	exporter Exporter
	rand     *rand.Rand
	styles   styles
	machine  *machine.StateMachine[State]
	menu     []command
}

// New creates a shell over the storage. The menu is fixed at construction.
func New(in io.Reader, out io.Writer, store storage.Storage, opts ...Option) *Shell {
	s := &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		storage: store,
		styles:  newStyles(out),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.machine = newMachine()
	s.menu = []command{
		{"Exit", nil},
		{"List movies", s.listMovies},
		{"Add movie", s.addMovie},
		{"Delete movie", s.deleteMovie},
		{"Update movie", s.updateMovie},
		{"Stats", s.stats},
		{"Random movie", s.randomMovie},
		{"Search movie", s.searchMovie},
		{"Movies sorted by rating", s.sortByRating},
		{"Movies sorted by year", s.sortByYear},
		{"Filter movies", s.filterMovies},
		{"Generate website", s.generateWebsite},
	}

	return s
}

func newMachine() *machine.StateMachine[State] {
	return machine.New(StateMenu,
		machine.From(StateMenu).To(StateOperation, StateExit),
		machine.From(StateOperation).To(StateMenu),
	)
}

// State returns where the shell loop currently is
func (s *Shell) State() State {
	return s.machine.Current()
}

// Run loops over the menu until the user exits or input ends
func (s *Shell) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx, "session", uuid.NewString())
	ctx = logger.WithCtx(ctx, log)

	s.println(s.styles.banner.Render("********** My Movies Database **********"))

	for {
		if _, err := s.storage.List(ctx); err != nil {
			s.printError(err)
		}

		s.printMenu()
		line, err := s.readLine(fmt.Sprintf("Enter choice (0-%d): ", len(s.menu)-1))
		if err != nil {
			return s.exit(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice >= len(s.menu) {
			log.Debugw("ignoring menu input", "input", line)
			continue
		}

		if choice == 0 {
			return s.exit(nil)
		}

		if err := s.dispatch(ctx, s.menu[choice]); err != nil {
			return s.exit(err)
		}
	}
}

// dispatch runs one operation and returns only when input has ended
func (s *Shell) dispatch(ctx context.Context, cmd command) error {
	if err := s.machine.Transition(StateOperation); err != nil {
		return err
	}
	defer func() {
		if err := s.machine.Transition(StateMenu); err != nil {
			logger.FromCtx(ctx).Errorw("failed to return to menu", "error", err)
		}
	}()

	logger.FromCtx(ctx).Debugw("running command", "command", cmd.label)
	s.println()

	if err := cmd.handler(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		s.printError(err)
	}

	_, err := s.readLine("\nPress enter to continue\n")
	return err
}

func (s *Shell) exit(err error) error {
	if terr := s.machine.Transition(StateExit); terr != nil {
		return terr
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	s.println("Bye bye! :>")
	return nil
}

func (s *Shell) printMenu() {
	s.println(s.styles.header.Render("Menu:"))
	for i, cmd := range s.menu {
		s.printf("%d. %s\n", i, cmd.label)
	}
}
