package alloy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Task is the connector's task object, using Zoho CRM's own field names.
type Task struct {
	ID           string `json:"id"`
	Subject      string `json:"Subject"`
	Status       string `json:"Status"`
	Priority     string `json:"Priority"`
	Description  string `json:"Description"`
	DueDate      string `json:"Due_Date"`
	Owner        *Owner `json:"Owner,omitempty"`
	CreatedTime  string `json:"Created_Time"`
	ModifiedTime string `json:"Modified_Time"`
}

// Owner is Zoho's record owner object.
type Owner struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// TaskPayload is the body for create/update calls. Every field is omitempty
// so a partial update serializes only the fields actually supplied.
type TaskPayload struct {
	Subject     string `json:"Subject,omitempty"`
	Status      string `json:"Status,omitempty"`
	Priority    string `json:"Priority,omitempty"`
	Description string `json:"Description,omitempty"`
	DueDate     string `json:"Due_Date,omitempty"`
	Owner       *Owner `json:"Owner,omitempty"`
}

type taskResponse struct {
	Task Task `json:"task"`
}

type listResponse struct {
	Tasks []Task `json:"tasks"`
}

// APIError is a non-success connector response, surfaced with the upstream
// message intact.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("connector API error %d: %s", e.StatusCode, e.Message)
}

// newAPIError reads an error response body. The connector reports failures as
// {"message": "..."}; anything else is surfaced raw.
func newAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
}
