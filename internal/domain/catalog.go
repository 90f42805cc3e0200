package domain

import (
	"fmt"
	"strings"
)

type EntryKind string

const (
	EntryKindService EntryKind = "service"
	EntryKindLog     EntryKind = "log"
)

func (k EntryKind) Valid() bool {
	switch k {
	case EntryKindService, EntryKindLog:
		return true
	default:
		return false
	}
}

type CatalogEntry struct {
	Kind        EntryKind
	Name        string
	Description string
}

func (e CatalogEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("unsupported catalog entry kind %q", e.Kind)
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(e.Name, "/\\") && e.Kind == EntryKindService {
		return fmt.Errorf("service name %q must not contain path separators", e.Name)
	}

	return nil
}

// Catalog lists the services and log files the client offers as choices.
type Catalog struct {
	Services []CatalogEntry
	Logs     []CatalogEntry
}

func DefaultCatalog() Catalog {
	return Catalog{
		Services: []CatalogEntry{
			{Kind: EntryKindService, Name: "bella"},
			{Kind: EntryKindService, Name: "fusion"},
			{Kind: EntryKindService, Name: "neuro"},
		},
		Logs: []CatalogEntry{
			{Kind: EntryKindLog, Name: HistoryLogFile},
		},
	}
}

func (c Catalog) Names(kind EntryKind) []string {
	entries := c.Services
	if kind == EntryKindLog {
		entries = c.Logs
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func (c *Catalog) Normalize() {
	if c == nil {
		return
	}

	c.Services = normalizeEntries(c.Services, EntryKindService)
	c.Logs = normalizeEntries(c.Logs, EntryKindLog)
}

func normalizeEntries(entries []CatalogEntry, kind EntryKind) []CatalogEntry {
	out := make([]CatalogEntry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		entry.Name = name
		entry.Kind = kind
		out = append(out, entry)
	}
	return out
}

type ServiceAction string

const (
	ServiceActionStart   ServiceAction = "start"
	ServiceActionStop    ServiceAction = "stop"
	ServiceActionRestart ServiceAction = "restart"
	ServiceActionStatus  ServiceAction = "status"
)

func (a ServiceAction) Valid() bool {
	switch a {
	case ServiceActionStart, ServiceActionStop, ServiceActionRestart, ServiceActionStatus:
		return true
	default:
		return false
	}
}
