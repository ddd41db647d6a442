package registry

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrSiteNotFound   = errors.New("site not found")
	ErrSiteNameExists = errors.New("site name already exists")
)
