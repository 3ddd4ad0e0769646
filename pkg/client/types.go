package client

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type Page struct {
	ID        string    `json:"_id"`
	Path      string    `json:"path"`
	Status    string    `json:"status,omitempty"`
	Grant     int       `json:"grant,omitempty"`
	Revision  *Revision `json:"revision,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Revision is an immutable snapshot of a page body. Listing endpoints only
// return the revision identifier, in which case Body is empty and HasBody
// reports false.
type Revision struct {
	ID        string    `json:"_id"`
	PageID    string    `json:"pageId,omitempty"`
	Body      string    `json:"body"`
	Format    string    `json:"format,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	hasBody bool
}

func (r *Revision) HasBody() bool {
	return r.hasBody
}

// UnmarshalJSON accepts both a populated revision object and a bare
// revision identifier.
func (r *Revision) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Revision{ID: id}
		return nil
	}

	type revision Revision

	var rev revision
	if err := json.Unmarshal(data, &rev); err != nil {
		return errors.WithStack(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.WithStack(err)
	}

	*r = Revision(rev)
	_, r.hasBody = fields["body"]

	return nil
}

type rawResponse struct {
	raw []byte
}

// Raw returns the undecoded response body.
func (r *rawResponse) Raw() []byte {
	return r.raw
}

func (r *rawResponse) setRaw(data []byte) {
	r.raw = data
}

type ListPagesResponse struct {
	rawResponse

	Pages      []Page `json:"pages"`
	TotalCount int    `json:"totalCount"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type PageResponse struct {
	rawResponse

	Page *Page `json:"page"`
}

type CreatePageResponse struct {
	rawResponse

	Page     *Page     `json:"page"`
	Revision *Revision `json:"revision"`
}

type UpdatePageResponse struct {
	rawResponse

	Page     *Page     `json:"page"`
	Revision *Revision `json:"revision"`
}
