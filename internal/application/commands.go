package application

import "github.com/bnema/bella-cli/internal/domain"

type ServiceActionCommand struct {
	Action  domain.ServiceAction
	Service string
}

type WriteFileCommand struct {
	Path    string
	Content string
}

type AddCatalogEntryCommand struct {
	Entry domain.CatalogEntry
}

type RemoveCatalogEntryCommand struct {
	Kind domain.EntryKind
	Name string
}
