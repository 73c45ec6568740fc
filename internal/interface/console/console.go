// Package console implements the interactive text menu: a line-oriented
// command loop over stdin/stdout that drives the application layer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alem-hub/student-management/config"
	"github.com/alem-hub/student-management/internal/application/command"
	"github.com/alem-hub/student-management/internal/application/query"
	"github.com/alem-hub/student-management/internal/domain/shared"
	"github.com/alem-hub/student-management/internal/domain/student"
	"github.com/alem-hub/student-management/internal/interface/console/presenter"
	"github.com/alem-hub/student-management/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMMAND LOOP
// AwaitingMenuChoice -> Running<Op> -> AwaitingMenuChoice, until Exit.
// ══════════════════════════════════════════════════════════════════════════════

const (
	msgBadChoice       = "Please enter a number between 1 and 5."
	msgGoodbye         = "Exiting the management program. Goodbye!"
	msgAddCancelled    = "Cancelled adding student."
	msgAvgCancelled    = "Cancelled calculating average grade."
	msgEmptyName       = "Name cannot be empty. Try again!"
	msgStudentAdded    = "Student added successfully!"
	msgDuplicateOnSave = "A student with that ID already exists."
	msgRejectedOnSave  = "Student was not added: check the name and grades."
)

// Console is the interactive menu bound to one student store.
type Console struct {
	prompt    *Prompter
	out       io.Writer
	repo      student.Repository
	presenter *presenter.Presenter
	cfg       config.ConsoleConfig
	log       *logger.Logger

	addStudent   *command.AddStudentHandler
	listStudents *query.ListStudentsHandler
	getAverage   *query.GetAverageHandler
	passFail     *query.PassFailHandler
}

// Options configures a Console.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Config config.ConsoleConfig
	Logger *logger.Logger
}

// New creates a Console over the given store.
func New(repo student.Repository, opts Options) *Console {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("console"))

	return &Console{
		prompt:    NewPrompter(opts.In, opts.Out),
		out:       opts.Out,
		repo:      repo,
		presenter: presenter.New(opts.Config.AveragePrecision, opts.Config.MissingAverage),
		cfg:       opts.Config,
		log:       log,

		addStudent:   command.NewAddStudentHandler(repo, log),
		listStudents: query.NewListStudentsHandler(repo),
		getAverage:   query.NewGetAverageHandler(repo),
		passFail:     query.NewPassFailHandler(repo, log),
	}
}

// Run loops on the menu until the user picks Exit or the input ends, both of
// which return nil. Per-field input errors never leave the loop.
func (c *Console) Run(ctx context.Context) error {
	c.log.Info("console started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := c.readMenuChoice()
		if err != nil {
			return c.finish(err)
		}

		c.log.Debug("menu choice", logger.Operation(choice.String()))

		if choice == MenuExit {
			fmt.Fprintln(c.out, msgGoodbye)
			c.log.Info("console exited")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) readMenuChoice() (MenuChoice, error) {
	for {
		line, err := c.prompt.ReadLine(c.presenter.Menu())
		if err != nil {
			return 0, err
		}
		if choice, ok := ParseMenuChoice(line); ok {
			return choice, nil
		}
		fmt.Fprintln(c.out, msgBadChoice)
	}
}

func (c *Console) dispatch(ctx context.Context, choice MenuChoice) error {
	switch choice {
	case MenuAdd:
		return c.runAdd(ctx)
	case MenuViewAll:
		return c.runViewAll(ctx)
	case MenuCalcAverage:
		return c.runCalcAverage(ctx)
	case MenuPassFail:
		return c.runPassFail(ctx)
	default:
		return shared.NewDomainError("console", "Dispatch", shared.ErrInvalidInput, "unknown menu choice")
	}
}

// finish maps a loop-ending error: closed input behaves like Exit.
func (c *Console) finish(err error) error {
	if errors.Is(err, shared.ErrInputClosed) {
		fmt.Fprintln(c.out, msgGoodbye)
		c.log.Info("input closed, console exited")
		return nil
	}
	c.log.Error("console stopped", logger.Err(err))
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

func (c *Console) runAdd(ctx context.Context) error {
	var id int
	for {
		v, err := c.prompt.ReadRequiredInt(fmt.Sprintf("Enter student ID (or %d to cancel):", c.cfg.CancelSentinel))
		if err != nil {
			return err
		}
		if v == c.cfg.CancelSentinel {
			fmt.Fprintln(c.out, msgAddCancelled)
			return nil
		}

		exists, err := c.repo.Exists(ctx, v)
		if err != nil {
			return err
		}
		if !exists {
			id = v
			break
		}
		fmt.Fprintf(c.out, "Error: A student with ID %d already exists. Try a different ID.\n", v)
	}

	name, err := c.readName()
	if err != nil {
		return err
	}

	grades, err := c.prompt.ReadFloatList("Enter grades separated by spaces:")
	if err != nil {
		return err
	}

	_, err = c.addStudent.Handle(ctx, command.AddStudentCommand{
		StudentID: id,
		Name:      name,
		Grades:    grades,
	})
	if err == nil {
		fmt.Fprintln(c.out, msgStudentAdded)
		return nil
	}

	msg, recoverable := addFailureMessage(err)
	if !recoverable {
		return err
	}
	// Fields were checked while prompting; the store is left untouched.
	c.log.Warn("student not added after input checks", logger.StudentID(id), logger.Err(err))
	fmt.Fprintln(c.out, msg)
	return nil
}

// addFailureMessage maps a failed save to the line shown to the user.
// Errors that are not the user's doing are reported as not recoverable.
func addFailureMessage(err error) (string, bool) {
	switch {
	case shared.IsAlreadyExists(err):
		return msgDuplicateOnSave, true
	case shared.IsValidation(err):
		return msgRejectedOnSave, true
	default:
		return "", false
	}
}

func (c *Console) readName() (string, error) {
	for {
		name, err := c.prompt.ReadLine("Enter student name:")
		if err != nil {
			return "", err
		}
		if command.ValidateName(name) == nil {
			return name, nil
		}
		fmt.Fprintln(c.out, msgEmptyName)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// View all
// ─────────────────────────────────────────────────────────────────────────────

func (c *Console) runViewAll(ctx context.Context) error {
	students, err := c.listStudents.Handle(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, c.presenter.StudentList(students))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Calculate average
// ─────────────────────────────────────────────────────────────────────────────

func (c *Console) runCalcAverage(ctx context.Context) error {
	prompt := fmt.Sprintf("Enter student ID to calculate average grade (or %d to cancel):", c.cfg.CancelSentinel)

	for {
		id, err := c.prompt.ReadRequiredInt(prompt)
		if err != nil {
			return err
		}
		if id == c.cfg.CancelSentinel {
			fmt.Fprintln(c.out, msgAvgCancelled)
			return nil
		}

		dto, err := c.getAverage.Handle(ctx, query.GetAverageQuery{StudentID: id})
		if err == nil {
			fmt.Fprintln(c.out, c.presenter.Average(*dto))
			return nil
		}
		if !shared.IsNotFound(err) {
			return err
		}
		fmt.Fprintf(c.out, "Student ID %d not found. Try a different ID.\n", id)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Pass / fail
// ─────────────────────────────────────────────────────────────────────────────

func (c *Console) runPassFail(ctx context.Context) error {
	threshold, err := c.prompt.ReadRequiredFloat("Enter grade threshold:")
	if err != nil {
		return err
	}

	res, err := c.passFail.Handle(ctx, query.PassFailQuery{Threshold: threshold})
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, c.presenter.PassFail(res))
	return nil
}
