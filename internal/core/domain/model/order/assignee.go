package order

import (
	"errors"
	"strings"

	"orderhub/internal/pkg/errs"
)

// Assignee is the delivery person an order was dispatched to.
type Assignee struct {
	id        string
	name      string
	studentID string
}

func NewAssignee(id string, name string, studentID string) (Assignee, error) {
	var problems []error
	if strings.TrimSpace(id) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("assignee id"))
	}
	if strings.TrimSpace(studentID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("assignee studentId"))
	}
	if err := errors.Join(problems...); err != nil {
		return Assignee{}, err
	}
	return Assignee{id: id, name: name, studentID: studentID}, nil
}

func (a Assignee) ID() string {
	return a.id
}

func (a Assignee) Name() string {
	return a.name
}

func (a Assignee) StudentID() string {
	return a.studentID
}
