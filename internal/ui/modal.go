package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"daygroups/internal/models"
	"daygroups/internal/placeholder"
)

// modalNode resolves the single modal slot for the current request from
// the "modal" query parameter. At most one modal renders; an unknown kind
// or a stale ID renders none. Navigating back to the bare view path closes
// whatever is open.
func (h *Handler) modalNode(r *http.Request) gomponents.Node {
	q := r.URL.Query()
	kind := q.Get("modal")
	if kind == "" {
		return nil
	}
	base := r.URL.Path
	current := h.App.CurrentUser()

	switch kind {
	case "group-new":
		return groupEditorModal(base, nil)
	case "group-edit":
		g, err := h.App.Group(q.Get("group"))
		if err != nil {
			return nil
		}
		return groupEditorModal(base, &g)
	case "post-new":
		g, err := h.App.Group(q.Get("group"))
		if err != nil {
			return nil
		}
		return addPostModal(base, g, h.App.Today())
	case "post":
		g, err := h.App.Group(q.Get("group"))
		if err != nil {
			return nil
		}
		i := g.FindPost(q.Get("post"))
		if i < 0 {
			return nil
		}
		return postModal(base, g, g.Posts[i], g.Posts[i].AuthorID == current.ID)
	case "post-edit":
		g, err := h.App.Group(q.Get("group"))
		if err != nil {
			return nil
		}
		i := g.FindPost(q.Get("post"))
		if i < 0 || g.Posts[i].AuthorID != current.ID {
			return nil
		}
		return editPostModal(base, g, g.Posts[i])
	}
	return nil
}

// modalShell hosts modal content in the single overlay slot: a backdrop
// that closes on click, an explicit close control, and an Escape handler
// registered once per open modal. All close affordances navigate to the
// bare view path, which renders the page with no modal at all.
func modalShell(title, returnURL string, content ...gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class("modal-root is-open"),
		html.A(html.Class("modal-backdrop"), html.Href(returnURL), gomponents.Attr("aria-label", "Close")),
		html.Div(
			html.Class("modal"),
			html.Role("dialog"),
			gomponents.Attr("aria-modal", "true"),
			html.Header(
				html.H3(gomponents.Text(title)),
				html.A(html.Class("close"), html.Href(returnURL), gomponents.Text("✕")),
			),
			html.Div(html.Class("content"), gomponents.Group(content)),
		),
		html.Script(gomponents.Raw(fmt.Sprintf(
			"document.addEventListener('keydown',function(e){if(e.key==='Escape'){window.location.href=%s;}},{once:true});",
			strconv.Quote(returnURL),
		))),
	)
}

// groupEditorModal hosts the create-group form, or the edit form when an
// existing group is passed.
func groupEditorModal(returnURL string, g *models.Group) gomponents.Node {
	title := "Create Group"
	action := "/groups"
	submitLabel := "Create"
	name, color, description := "", "#6b9bff", ""
	if g != nil {
		title = "Edit Group"
		action = "/groups/" + g.ID + "/update"
		submitLabel = "Save"
		name, color, description = g.Name, g.Color, g.Description
	}

	footer := []gomponents.Node{
		html.A(html.Href(returnURL), html.Class("ghost-btn"), gomponents.Text("Cancel")),
		html.Button(html.Type("submit"), html.Class("primary-btn"), gomponents.Text(submitLabel)),
	}
	var deleteForm gomponents.Node
	if g != nil {
		// The delete action is its own form, referenced from the footer
		// button so it can sit inside the editor's footer row.
		deleteForm = html.Form(
			html.ID("delete-group"),
			html.Method("post"),
			html.Action("/groups/"+g.ID+"/delete"),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnURL)),
		)
		footer = append([]gomponents.Node{
			html.Button(html.Type("submit"), html.FormAttr("delete-group"), html.Class("ghost-btn danger"), gomponents.Text("Delete")),
		}, footer...)
	}

	return modalShell(title, returnURL,
		deleteForm,
		html.Form(
			html.Class("stack-form"),
			html.Method("post"),
			html.Action(action),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnURL)),
			html.Label(gomponents.Text("Group Name"),
				html.Input(html.Type("text"), html.Name("name"), html.Value(name), html.Placeholder("e.g. Running Group")),
			),
			html.Label(gomponents.Text("Color"),
				html.Input(html.Type("color"), html.Name("color"), html.Value(color)),
			),
			html.Label(gomponents.Text("Description"),
				html.Textarea(html.Name("description"), html.Rows("3"), html.Placeholder("What's this group about?"), gomponents.Text(description)),
			),
			html.Div(html.Class("row end"), gomponents.Group(footer)),
		),
	)
}

// addPostModal hosts the new-post form: choose a photo, preview it, write
// a caption, post. The preview starts on a generated placeholder and swaps
// to the chosen file client-side.
func addPostModal(returnURL string, g models.Group, today models.DayKey) gomponents.Node {
	return modalShell("New Post", returnURL,
		html.Div(
			html.Class("row"),
			groupDot(g.Color),
			html.Div(
				html.Strong(gomponents.Text(g.Name)),
				html.Div(html.Class("muted"), gomponents.Text(today.Display())),
			),
		),
		html.Form(
			html.Class("stack-form"),
			html.Method("post"),
			html.Action("/groups/"+g.ID+"/posts"),
			html.EncType("multipart/form-data"),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnURL)),
			html.Img(html.ID("preview-img"), html.Class("post-preview"), html.Src(placeholder.SVG("PREVIEW", "")), html.Alt("Preview")),
			html.Label(gomponents.Text("Photo"),
				html.Input(html.ID("photo-input"), html.Type("file"), html.Name("photo"), html.Accept("image/*")),
			),
			html.Div(html.Class("muted small"), gomponents.Text(".jpg, .png, or .heic")),
			html.Label(gomponents.Text("Caption"),
				html.Input(html.Type("text"), html.Name("caption"), html.Placeholder("How did it go?")),
			),
			html.Div(
				html.Class("row end"),
				html.A(html.Href(returnURL), html.Class("ghost-btn"), gomponents.Text("Cancel")),
				html.Button(html.Type("submit"), html.Class("primary-btn"), gomponents.Text("Post")),
			),
		),
		html.Script(gomponents.Raw(previewScript)),
	)
}

// previewScript swaps the placeholder preview for the chosen file.
const previewScript = `(function(){
  var input=document.getElementById('photo-input');
  var img=document.getElementById('preview-img');
  if(!input||!img){ return; }
  input.addEventListener('change',function(){
    var f=input.files&&input.files[0];
    if(!f){ return; }
    var reader=new FileReader();
    reader.onload=function(){ img.src=reader.result; };
    reader.readAsDataURL(f);
  });
})();`

// postModal shows a single post full-size. The author additionally gets an
// Edit affordance.
func postModal(returnURL string, g models.Group, p models.Post, isAuthor bool) gomponents.Node {
	var edit gomponents.Node
	if isAuthor {
		edit = html.A(
			html.Href(returnURL+"?modal=post-edit&group="+url.QueryEscape(g.ID)+"&post="+url.QueryEscape(p.ID)),
			html.Class("ghost-btn"),
			gomponents.Text("Edit"),
		)
	}

	return modalShell("Post", returnURL,
		html.Img(html.Class("post-full"), html.Src(p.ImageRef), html.Alt("Post image")),
		html.Div(
			html.Class("row spread"),
			html.Div(
				html.Class("row"),
				groupDot(g.Color),
				html.Strong(gomponents.Text(g.Name)),
				html.Span(html.Class("muted"), gomponents.Text("• "+p.Date.Display())),
			),
			edit,
		),
		html.Div(html.Strong(gomponents.Text(p.AuthorName))),
		html.Div(html.Class("muted"), gomponents.Text(p.Caption)),
	)
}

// editPostModal hosts the caption editor and delete action for the
// author's own post.
func editPostModal(returnURL string, g models.Group, p models.Post) gomponents.Node {
	return modalShell("Edit Post", returnURL,
		html.Form(
			html.ID("delete-post"),
			html.Method("post"),
			html.Action("/groups/"+g.ID+"/posts/"+p.ID+"/delete"),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnURL)),
		),
		html.Img(html.Class("post-full"), html.Src(p.ImageRef), html.Alt("Post")),
		html.Form(
			html.Class("stack-form"),
			html.Method("post"),
			html.Action("/groups/"+g.ID+"/posts/"+p.ID+"/update"),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnURL)),
			html.Label(gomponents.Text("Caption"),
				html.Input(html.Type("text"), html.Name("caption"), html.Value(p.Caption)),
			),
			html.Div(
				html.Class("row spread"),
				html.Button(html.Type("submit"), html.FormAttr("delete-post"), html.Class("ghost-btn danger"), gomponents.Text("Delete")),
				html.Div(
					html.Class("row end"),
					html.A(html.Href(returnURL), html.Class("ghost-btn"), gomponents.Text("Cancel")),
					html.Button(html.Type("submit"), html.Class("primary-btn"), gomponents.Text("Save")),
				),
			),
		),
	)
}
