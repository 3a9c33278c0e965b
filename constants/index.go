package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_DELETE               = "Delete failed"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a number"
	NOT_FOUND_RECORDS          = "No records found"

	VENUE_NAME_EXISTS  = "A venue with this name is already listed"
	ARTIST_NAME_EXISTS = "An artist with this name is already listed"
	VENUE_NOT_FOUND    = "Venue not found"
	ARTIST_NOT_FOUND   = "Artist not found"
	SHOW_EXISTS        = "This show is already listed"
	INVALID_STATE      = "State is not a valid US state code"
	INVALID_GENRE      = "Genre is not in the supported genre list"
	INVALID_START_TIME = "Start time cannot be parsed"
	HAS_UPCOMING_SHOWS = "Cannot delete while upcoming shows are scheduled"
)
