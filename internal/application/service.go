package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports"
	"pkt.systems/pslog"
)

const (
	NoKeyText              = "(no key)"
	NoHistoryText          = "(no history)"
	LogNotFoundText        = "(log not found)"
	HistoryFailedText      = "Could not fetch history"
	LogFailedText          = "Could not fetch log"
	ListFailedText         = "Could not list"
	ListErrorText          = "Error listing files"
	MetricsUnavailableText = "metrics unavailable"
	BackendUnreachableText = "backend unreachable"
	NoResponseText         = "No response"
	RunningText            = "Running..."

	DefaultRecentLogLimit = 6
)

var (
	ErrMessageRequired          = errors.New("message is required")
	ErrCommandRequired          = errors.New("command is required")
	ErrPathRequired             = errors.New("path is required")
	ErrServiceRequired          = errors.New("service is required")
	ErrUnsupportedServiceAction = errors.New("unsupported service action")
)

type Service struct {
	backend ports.Backend
	catalog ports.CatalogRepository
}

func NewService(backend ports.Backend, catalog ports.CatalogRepository) *Service {
	return &Service{
		backend: backend,
		catalog: catalog,
	}
}

func (s *Service) Health(ctx context.Context) (domain.Health, error) {
	health, err := s.backend.Health(ctx)
	if err != nil {
		return domain.Health{}, fmt.Errorf("get health: %w", err)
	}
	return health, nil
}

// HealthText never fails: a rejected request reads as unavailable metrics and
// anything else as an unreachable backend.
func (s *Service) HealthText(ctx context.Context) string {
	text, _ := s.healthText(ctx)
	return text
}

func (s *Service) healthText(ctx context.Context) (string, error) {
	health, err := s.Health(ctx)
	if err != nil {
		return HealthProblem(err), err
	}
	return health.Summary(), nil
}

func HealthProblem(err error) string {
	if errors.Is(err, domain.ErrServer) {
		return MetricsUnavailableText
	}
	return BackendUnreachableText
}

// HealthTick renders the health line into sink on every poll.
func (s *Service) HealthTick(sink ports.Sink) PollAction {
	return func(ctx context.Context) error {
		text, err := s.healthText(ctx)
		sink.Replace(text)
		return err
	}
}

func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageRequired
	}

	reply, err := s.backend.Chat(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	if reply == "" {
		return NoResponseText, nil
	}
	return reply, nil
}

// RecentLogs keeps the last limit lines the backend returned, oldest first.
func (s *Service) RecentLogs(ctx context.Context, limit int) ([]string, error) {
	lines, err := s.backend.RecentLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recent logs: %w", err)
	}
	if limit <= 0 {
		limit = DefaultRecentLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines, nil
}

func (s *Service) Run(ctx context.Context, command string) (json.RawMessage, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, ErrCommandRequired
	}

	out, err := s.backend.Run(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", command, err)
	}
	pslog.Ctx(ctx).Info("command run", "cmd", command)
	return out, nil
}

// RunAndRefresh runs command and then reloads the command history, the way
// the run control refreshes the history pane.
func (s *Service) RunAndRefresh(ctx context.Context, command string) (RunResult, error) {
	out, err := s.Run(ctx, command)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{Output: out, History: s.HistoryText(ctx)}, nil
}

func (s *Service) ServiceAction(ctx context.Context, cmd ServiceActionCommand) (json.RawMessage, error) {
	if !cmd.Action.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedServiceAction, cmd.Action)
	}
	service := strings.TrimSpace(cmd.Service)
	if service == "" {
		return nil, ErrServiceRequired
	}

	out, err := s.backend.ServiceAction(ctx, cmd.Action, service)
	if err != nil {
		return nil, fmt.Errorf("%s service %q: %w", cmd.Action, service, err)
	}
	pslog.Ctx(ctx).Info("service action", "action", string(cmd.Action), "service", service)
	return out, nil
}

func (s *Service) ShowLog(ctx context.Context, file string) (string, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return "", ErrPathRequired
	}

	text, err := s.backend.ShowLog(ctx, file)
	if err != nil {
		return "", fmt.Errorf("show log %q: %w", file, err)
	}
	return text, nil
}

func (s *Service) History(ctx context.Context) (string, error) {
	return s.ShowLog(ctx, domain.HistoryLogFile)
}

func (s *Service) HistoryText(ctx context.Context) string {
	text, err := s.History(ctx)
	switch {
	case err == nil:
		return domain.OrEmpty(text)
	case errors.Is(err, domain.ErrNoCredential):
		return NoKeyText
	case errors.Is(err, domain.ErrNotFound):
		return NoHistoryText
	default:
		return HistoryFailedText
	}
}

func (s *Service) LogText(ctx context.Context, file string) string {
	text, err := s.ShowLog(ctx, file)
	if err != nil {
		return logProblem(err)
	}
	return domain.OrEmpty(text)
}

func logProblem(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return NoKeyText
	case errors.Is(err, domain.ErrNotFound):
		return LogNotFoundText
	default:
		return LogFailedText
	}
}

// TailTick fetches file on every poll. Each tick acquires its own credential
// through the backend. A missing key is shown as NoKeyText; any other failed
// tick leaves the previous output in place.
func (s *Service) TailTick(file string, sink ports.Sink) PollAction {
	return func(ctx context.Context) error {
		text, err := s.ShowLog(ctx, file)
		if err != nil {
			if errors.Is(err, domain.ErrNoCredential) {
				sink.Replace(NoKeyText)
			}
			return err
		}
		sink.Replace(domain.OrEmpty(text))
		return nil
	}
}

// ToggleTail starts or stops tailing file into sink and reports whether the
// tail is now running. The first fetch runs before the loop starts: without
// a key the sink shows NoKeyText and the tail stays off. Stopping waits for
// an in-flight tick before the stop marker is appended.
func (s *Service) ToggleTail(ctx context.Context, tail *PollSession, file string, interval time.Duration, sink ports.Sink) (bool, error) {
	done := tail.Done()
	if tail.Stop() {
		<-done
		sink.Append(domain.StoppedTailText)
		return false, nil
	}

	tick := s.TailTick(file, sink)
	if err := tick(ctx); err != nil {
		if errors.Is(err, domain.ErrNoCredential) {
			return false, err
		}
		sink.Replace(logProblem(err))
		pslog.Ctx(ctx).Warn("first tail fetch failed", "file", file, "err", err)
	}

	return tail.Toggle(ctx, interval, false, tick), nil
}

func (s *Service) ListFiles(ctx context.Context, path string) (domain.Listing, error) {
	path = strings.TrimSpace(path)
	items, err := s.backend.ListFiles(ctx, path)
	if err != nil {
		return domain.Listing{Path: path}, fmt.Errorf("list files %q: %w", path, err)
	}
	return domain.Listing{Path: path, Items: items}, nil
}

func (s *Service) ListingText(ctx context.Context, path string) string {
	listing, err := s.ListFiles(ctx, path)
	return listingText(listing, err)
}

func listingText(listing domain.Listing, err error) string {
	switch {
	case err == nil:
		return listing.Lines()
	case errors.Is(err, domain.ErrNoCredential):
		return NoKeyText
	case errors.Is(err, domain.ErrServer):
		return ListFailedText
	default:
		return ListErrorText
	}
}

// ReadFile returns the file content, or the not-found text when the backend
// has no such file.
func (s *Service) ReadFile(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrPathRequired
	}

	content, err := s.backend.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundText, nil
		}
		return "", fmt.Errorf("read file %q: %w", path, err)
	}
	return content, nil
}

// WriteFile saves content and relists the directory containing the file.
func (s *Service) WriteFile(ctx context.Context, cmd WriteFileCommand) (WriteResult, error) {
	path := strings.TrimSpace(cmd.Path)
	if path == "" {
		return WriteResult{}, ErrPathRequired
	}

	saved, err := s.backend.WriteFile(ctx, path, cmd.Content)
	if err != nil {
		return WriteResult{}, fmt.Errorf("write file %q: %w", path, err)
	}

	dir := ParentDir(saved)
	listing, listErr := s.ListFiles(ctx, dir)
	if listErr != nil {
		pslog.Ctx(ctx).Warn("relist after write failed", "dir", dir, "err", listErr)
	}

	return WriteResult{Path: saved, Dir: dir, Listing: listing, ListErr: listErr}, nil
}

func (r WriteResult) ListingText() string {
	return listingText(r.Listing, r.ListErr)
}

// ParentDir returns the directory part of a backend path. Both separators are
// accepted since the backend may run on Windows. A bare name has no parent and
// lists the backend's default directory.
func ParentDir(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	switch {
	case i < 0:
		return ""
	case i == 0:
		return path[:1]
	case i == 2 && path[1] == ':':
		return path[:3]
	default:
		return path[:i]
	}
}

func (s *Service) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

func (s *Service) AddCatalogEntry(ctx context.Context, cmd AddCatalogEntryCommand) error {
	entry := cmd.Entry
	entry.Name = strings.TrimSpace(entry.Name)
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validate catalog entry: %w", err)
	}
	if err := s.catalog.Add(ctx, entry); err != nil {
		return fmt.Errorf("add catalog entry: %w", err)
	}
	return nil
}

func (s *Service) RemoveCatalogEntry(ctx context.Context, cmd RemoveCatalogEntryCommand) error {
	if !cmd.Kind.Valid() {
		return fmt.Errorf("unsupported catalog entry kind %q", cmd.Kind)
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if err := s.catalog.Remove(ctx, cmd.Kind, name); err != nil {
		return fmt.Errorf("remove catalog entry: %w", err)
	}
	return nil
}
