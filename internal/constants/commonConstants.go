package constants

type (
	APIStatus string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// Upstream operations, used as metric labels and log fields.
const (
	OpQueryDatabase    = "query_database"
	OpRetrievePage     = "retrieve_page"
	OpRetrieveDatabase = "retrieve_database"
)

// MaxPageSize is the largest page_size the Notion query endpoint accepts.
const MaxPageSize = 100
