package constants

const (
	StatusInternalError = "Internal Server Error"
	StatusTooManyReqs   = "Too many requests"
)

const (
	MsgGenericLoadFailure = "An error occurred while loading the roadmap"
	MsgProjectNotFound    = "Project not found"
	MsgNoRoadmapItems     = "No roadmap items found."
)
