package desktop

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/go-x/templx/form"
	formx "github.com/bornholm/go-x/templx/form"
	"github.com/bornholm/go-x/templx/form/renderer/bulma"
	"github.com/bornholm/growi-editor/internal/desktop/settings"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/pkg/errors"
)

const title = "Growi page editor"

const (
	statusInfo    = "info"
	statusSuccess = "success"
	statusError   = "error"
)

const (
	fieldPageID = "pageId"
	fieldBody   = "body"
)

func newPageForm() *form.Form {
	form := formx.New([]form.Field{
		formx.NewField(fieldPageID,
			formx.WithLabel("Page ID"),
			formx.WithRequired(true),
			formx.WithDescription("Identifier of the Growi page"),
			form.WithAttribute("list", "recentPages"),
			form.WithAttribute("autocomplete", "off"),
		),
		formx.NewField(fieldBody,
			formx.WithLabel("Body"),
			formx.WithType("textarea"),
			form.WithAttribute("rows", "15"),
		),
	},
		form.WithDefaultRenderer(bulma.NewFieldRenderer()),
		form.WithFieldRenderer(fieldBody, &bodyRenderer{}),
	)

	return form
}

// bodyRenderer emits a line feed right after the <textarea> start tag. HTML
// parsers drop that first line feed, so a body starting with a newline is
// displayed and submitted back unchanged.
type bodyRenderer struct {
	bulma.TextareaRenderer
}

func (r *bodyRenderer) RenderField(ctx form.FieldContext) templ.Component {
	ctx.Value = []string{"\n" + strings.Join(ctx.Value, "")}
	return r.TextareaRenderer.RenderField(ctx)
}

var _ form.FieldRenderer = &bodyRenderer{}

type FormPageVModel struct {
	Title       string
	Form        *form.Form
	RecentPages []string
	Status      string
	StatusKind  string
	Disabled    bool
}

func (m *FormPageVModel) PageID() string {
	value, _ := m.Form.GetFieldValue(fieldPageID)
	return value
}

func (m *FormPageVModel) Body() string {
	value, _ := m.Form.GetFieldValue(fieldBody)
	return value
}

type formPageView struct {
	*FormPageVModel
	Fields map[string]template.HTML
}

func (h *Handler) getFormPage(w http.ResponseWriter, r *http.Request) {
	vmodel := h.fillFormPageVModel(r)

	if vmodel.Status == "" {
		vmodel.Status = "Ready"
		vmodel.StatusKind = statusInfo
	}

	h.render(w, r, vmodel)
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vmodel := h.fillFormPageVModel(r)
	if vmodel.Disabled || vmodel.StatusKind == statusError {
		h.render(w, r, vmodel)
		return
	}

	content, err := h.editor.FetchCurrentContent(ctx, vmodel.PageID(), editor.WithProgress(logProgress))
	if err != nil {
		setErrorStatus(vmodel, err)
		h.render(w, r, vmodel)
		return
	}

	vmodel.Form.SetFieldValues(fieldBody, content.Body)
	vmodel.Status = fmt.Sprintf("Current page content fetched (revision %s).", content.RevisionID)
	vmodel.StatusKind = statusSuccess

	h.rememberPage(r, vmodel)
	h.render(w, r, vmodel)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vmodel := h.fillFormPageVModel(r)
	if vmodel.Disabled || vmodel.StatusKind == statusError {
		h.render(w, r, vmodel)
		return
	}

	if _, err := h.editor.SubmitUpdate(ctx, vmodel.PageID(), vmodel.Body(), editor.WithProgress(logProgress)); err != nil {
		setErrorStatus(vmodel, err)
		h.render(w, r, vmodel)
		return
	}

	vmodel.Status = "Page update completed."
	vmodel.StatusKind = statusSuccess

	h.rememberPage(r, vmodel)
	h.render(w, r, vmodel)
}

func (h *Handler) fillFormPageVModel(r *http.Request) *FormPageVModel {
	ctx := r.Context()

	st, err := h.store.Get(false)
	if err != nil {
		slog.WarnContext(ctx, "could not load settings", slogx.Error(err))
		st = settings.Defaults
	}

	vmodel := &FormPageVModel{
		Title:       title,
		Form:        newPageForm(),
		RecentPages: st.RecentPages,
	}

	vmodel.Form.SetFieldValues(fieldPageID, st.LastPageID)

	if r.Method == http.MethodPost {
		if err := vmodel.Form.Handle(r); err != nil {
			setErrorStatus(vmodel, errors.WithStack(err))
			return vmodel
		}

		// Browsers submit textarea line breaks as CRLF
		body, _ := vmodel.Form.GetFieldValue(fieldBody)
		vmodel.Form.SetFieldValues(fieldBody, strings.ReplaceAll(body, "\r\n", "\n"))
	}

	if h.startupErr != nil || h.editor == nil {
		vmodel.Disabled = true
		vmodel.StatusKind = statusError
		vmodel.Status = "Configuration error, actions are disabled."

		if h.startupErr != nil {
			vmodel.Status = fmt.Sprintf("Configuration error, actions are disabled.\n%s", h.startupErr.Error())
		}
	}

	return vmodel
}

func (h *Handler) rememberPage(r *http.Request, vmodel *FormPageVModel) {
	err := h.store.Update(func(st *settings.Settings) {
		st.Remember(vmodel.PageID())
		vmodel.RecentPages = st.RecentPages
	})
	if err != nil {
		slog.WarnContext(r.Context(), "could not save settings", slogx.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, vmodel *FormPageVModel) {
	ctx := r.Context()

	view := formPageView{
		FormPageVModel: vmodel,
		Fields:         make(map[string]template.HTML),
	}

	for _, name := range vmodel.Form.GetFieldNames() {
		component, err := vmodel.Form.RenderField(name)
		if err != nil {
			h.renderError(w, r, errors.WithStack(err))
			return
		}

		html, err := templ.ToGoHTML(ctx, component)
		if err != nil {
			h.renderError(w, r, errors.WithStack(err))
			return
		}

		view.Fields[name] = html
	}

	var buff bytes.Buffer

	if err := formTemplate.Execute(&buff, view); err != nil {
		h.renderError(w, r, errors.WithStack(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write response", slogx.Error(err))
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "could not render form", slogx.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func setErrorStatus(vmodel *FormPageVModel, err error) {
	vmodel.StatusKind = statusError

	var validationErr *editor.ValidationError

	switch {
	case errors.As(err, &validationErr):
		vmodel.Status = fmt.Sprintf("Please fill in the required fields (%s).", err.Error())

		for _, field := range validationErr.Fields() {
			switch field {
			case editor.FieldPageID:
				vmodel.Form.Errors[fieldPageID] = "this field is required"
			case editor.FieldBody:
				vmodel.Form.Errors[fieldBody] = "this field is required"
			}
		}
	case editor.IsConflict(err):
		vmodel.Status = fmt.Sprintf("The page was modified since its revision was fetched.\n%s", err.Error())
	default:
		vmodel.Status = fmt.Sprintf("An error occurred while processing:\n%s", err.Error())
	}
}

func logProgress(ctx context.Context, message string) {
	slog.InfoContext(ctx, message)
}
