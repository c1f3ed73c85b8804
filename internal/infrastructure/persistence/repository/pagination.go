package repository

import "gymdesk/internal/shared/constants"

// offsetFor and limitFor clamp paging inputs at the storage boundary so a
// bad page never turns into a full-table scan.
func offsetFor(page, pageSize int) int {
	if page < 1 {
		page = constants.DefaultPage
	}
	return (page - 1) * limitFor(pageSize)
}

func limitFor(pageSize int) int {
	if pageSize < 1 {
		return constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return pageSize
}
