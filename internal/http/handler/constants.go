package handler

const (
	paramID        = "id"
	paramProjectID = "project_id"
	paramSpaceID   = "space_id"

	queryTaskName       = "task_name"
	queryIncludeDeleted = "include_deleted"
	queryLimit          = "limit"
	queryOffset         = "offset"

	formFieldFile = "file"

	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	msgInvalidProjectID = "invalid project id"
	msgInvalidSpaceID   = "invalid space id"
	msgInvalidImageID   = "invalid image id"
	msgInvalidPromptID  = "invalid prompt id"

	msgProjectDeleted = "project deleted"
	msgSpaceDeleted   = "space deleted"
	msgImageDeleted   = "image deleted"
	msgPromptDeleted  = "prompt deleted"

	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "content type must be application/json"
	msgUploadFileRequired      = "an image file is required"
	msgOpenUploadFail          = "failed to read uploaded file"
)
