package service

// ListServiceWrapper defines middleware composition for ListService.
// Implementations wrap an existing ListService to add behavior such as
// validating.
type ListServiceWrapper interface {
	Wrap(ListService) ListService
}

// ItemServiceWrapper defines middleware composition for ItemService.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// ArchiveServiceWrapper defines middleware composition for ArchiveService.
type ArchiveServiceWrapper interface {
	Wrap(ArchiveService) ArchiveService
}
