package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/form"
	"github.com/goliatone/go-formgate/pkg/submission"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	selectIdx    []int
	infoMessages []string
	menus        [][]string
	inputPos     int
	passPos      int
	selectPos    int
	selectErr    error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg.Options)
	if s.selectPos >= len(s.selectIdx) {
		if s.selectErr != nil {
			return -1, s.selectErr
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

const (
	menuName = iota
	menuEmail
	menuPassword
	menuConfirmation
	menuAge
	menuSubmit
	menuReset
	menuQuit
)

func newSession(driver *stubDriver, handoff controller.Handoff) *Session {
	view := NewView()
	ctrl := controller.New(form.New(form.WithPresenter(view)),
		controller.WithNotifier(view),
		controller.WithHandoff(handoff),
	)
	return New(ctrl, view, WithPromptDriver(driver))
}

func TestSession_FillAndSubmit(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuName, menuEmail, menuPassword, menuConfirmation, menuAge, menuSubmit, menuQuit},
		inputs:    []string{"John", "a@b.co", "20"},
		passwords: []string{"Abcdef1!", "Abcdef1!"},
	}
	var got []submission.Registration
	s := newSession(driver, func(reg submission.Registration) error {
		got = append(got, reg)
		return nil
	})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []submission.Registration{{Name: "John", Email: "a@b.co", Age: 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hand-off mismatch (-want +got):\n%s", diff)
	}
	if !containsLine(driver.infoMessages, "form submitted successfully") {
		t.Fatalf("expected success notice, got %v", driver.infoMessages)
	}
	if menu := driver.menus[menuSubmit]; menu[menuSubmit] != "Submit" {
		t.Fatalf("expected submit to be enabled before submitting, got %q", menu[menuSubmit])
	}
	if menu := driver.menus[len(driver.menus)-1]; menu[menuSubmit] != "Submit (disabled)" {
		t.Fatalf("expected submit to be disabled after reset, got %q", menu[menuSubmit])
	}
	for _, line := range driver.infoMessages {
		if strings.Contains(line, "Abcdef1!") {
			t.Fatalf("password echoed in output: %q", line)
		}
	}
}

func TestSession_BlockedSubmitKeepsValues(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuName, menuSubmit, menuQuit},
		inputs:    []string{"Jo"},
	}
	handed := 0
	s := newSession(driver, func(submission.Registration) error {
		handed++
		return nil
	})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if handed != 0 {
		t.Fatalf("expected no hand-off")
	}
	if !containsLine(driver.infoMessages, "fix the errors before submitting") {
		t.Fatalf("expected blocked notice, got %v", driver.infoMessages)
	}
	if s.view.FieldState(form.FieldName).Value != "Jo" {
		t.Fatalf("expected name to survive the blocked submit")
	}
	if !containsLine(driver.infoMessages, "[!!] Name: Jo (name must be at least 3 characters)") {
		t.Fatalf("expected invalid name line, got %v", driver.infoMessages)
	}
}

func TestSession_ResetClearsView(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuName, menuReset, menuQuit},
		inputs:    []string{"John"},
	}
	s := newSession(driver, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := s.view.FieldState(form.FieldName); got.Value != "" || got.Validity.Class() != "" {
		t.Fatalf("expected cleared name, got %+v", got)
	}
	if s.ctrl.Phase() != controller.Pristine {
		t.Fatalf("expected pristine, got %s", s.ctrl.Phase())
	}
}

func TestSession_AbortPropagates(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	s := newSession(driver, nil)

	err := s.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_RequiresController(t *testing.T) {
	s := New(nil, nil, WithPromptDriver(&stubDriver{}))
	if err := s.Run(context.Background()); !errors.Is(err, ErrNoController) {
		t.Fatalf("expected ErrNoController, got %v", err)
	}
}

func containsLine(lines []string, needle string) bool {
	for _, line := range lines {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

func TestSession_RequiresView(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{menuQuit}}
	ctrl := controller.New(form.New())
	s := New(ctrl, nil, WithPromptDriver(driver))
	if err := s.Run(context.Background()); !errors.Is(err, ErrNoView) {
		t.Fatalf("expected ErrNoView, got %v", err)
	}
}

func TestWithOutput_RoutesStatusLines(t *testing.T) {
	var buf bytes.Buffer
	s := New(controller.New(form.New()), NewView(), WithOutput(&buf))
	if err := s.driver.Info(context.Background(), "submit: disabled"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if diff := cmp.Diff("submit: disabled\n", buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
