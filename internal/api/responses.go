package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ActionResult mirrors attendance-style operations: the message is meant to be
// shown to the admin as-is, whether or not the action applied.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Attendance marked!"`
}
