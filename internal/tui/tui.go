package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"

	"github.com/Joseda-hg/lazyboard/internal/board"
	"github.com/Joseda-hg/lazyboard/internal/model"
	"github.com/Joseda-hg/lazyboard/internal/tasks"
	"github.com/Joseda-hg/lazyboard/internal/theme"
)

const (
	viewHeader = "header"
	viewFooter = "footer"
	viewPosts  = "posts"
	viewDetail = "detail"
	viewTasks  = "tasks"
	viewInput  = "input"
	viewHelp   = "help"
)

type Deps struct {
	Posts  *board.Posts
	Tasks  *board.Tasks
	Theme  *theme.Context
	Logger *slog.Logger
}

type UI struct {
	ctx    context.Context
	posts  *board.Posts
	tasks  *board.Tasks
	theme  *theme.Context
	logger *slog.Logger
	gui    *gocui.Gui

	selectedPost int
	selectedTask int
	focus        string

	input      *inputState
	editor     *lineEditor
	helpActive bool
	status     string
}

func newUI(ctx context.Context, deps Deps) *UI {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ui := &UI{
		ctx:    ctx,
		posts:  deps.Posts,
		tasks:  deps.Tasks,
		theme:  deps.Theme,
		logger: logger,
		focus:  viewPosts,
	}
	ui.editor = &lineEditor{ui: ui}
	return ui
}

// Run blocks until the user quits. The first fetch starts in the background
// so the layout is drawn with a loading notice.
func Run(ctx context.Context, deps Deps) error {
	gui, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputNormal})
	if err != nil {
		return err
	}
	defer gui.Close()

	ui := newUI(ctx, deps)
	ui.gui = gui
	gui.Mouse = true

	gui.SetManagerFunc(ui.layout)
	if err := ui.bindKeys(gui); err != nil {
		return err
	}
	if !ui.posts.Snapshot().Loaded {
		ui.fetchPosts(gui)
	}

	if err := gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (u *UI) bindKeys(gui *gocui.Gui) error {
	global := []struct {
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, u.quit},
		{'q', u.quit},
		{'/', u.startSearch},
		{'n', u.nextPage},
		{'p', u.prevPage},
		{'a', u.startAddTask},
		{'x', u.toggleTask},
		{'d', u.deleteTask},
		{'f', u.cycleFilter},
		{'t', u.toggleTheme},
		{'r', u.refetch},
		{'?', u.toggleHelp},
		{gocui.KeyTab, u.switchFocus},
		{'1', u.focusPosts},
		{'2', u.focusDetail},
		{'3', u.focusTasks},
	}
	for _, binding := range global {
		if err := gui.SetKeybinding("", binding.key, gocui.ModNone, binding.handler); err != nil {
			return err
		}
	}

	for _, name := range []string{viewPosts, viewTasks} {
		if err := gui.SetKeybinding(name, gocui.KeyArrowDown, gocui.ModNone, u.moveDown); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, 'j', gocui.ModNone, u.moveDown); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, gocui.KeyArrowUp, gocui.ModNone, u.moveUp); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, 'k', gocui.ModNone, u.moveUp); err != nil {
			return err
		}
	}
	if err := gui.SetKeybinding(viewPosts, gocui.KeyArrowRight, gocui.ModNone, u.nextPage); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewPosts, gocui.KeyArrowLeft, gocui.ModNone, u.prevPage); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewTasks, gocui.KeySpace, gocui.ModNone, u.toggleTask); err != nil {
		return err
	}

	if err := gui.SetKeybinding(viewInput, gocui.KeyEnter, gocui.ModNone, u.submitInput); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewInput, gocui.KeyEsc, gocui.ModNone, u.cancelInput); err != nil {
		return err
	}
	for _, key := range []any{gocui.KeyEsc, 'q', '?'} {
		if err := gui.SetKeybinding(viewHelp, key, gocui.ModNone, u.closeHelp); err != nil {
			return err
		}
	}

	for _, name := range []string{viewPosts, viewTasks} {
		viewName := name
		if err := gui.SetViewClickBinding(&gocui.ViewMouseBinding{ViewName: viewName, Key: gocui.MouseLeft, Handler: func(opts gocui.ViewMouseBindingOpts) error {
			return u.onListClick(gui, viewName, opts)
		}}); err != nil {
			return err
		}
	}
	return u.bindMouseScroll(gui)
}

func (u *UI) layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}
	current := u.theme.Theme()

	headerView, err := gui.SetView(viewHeader, 0, 0, maxX-1, 0, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	headerView.Frame = false
	headerView.Wrap = true
	headerView.FgColor = palette(current).text
	headerView.Clear()
	u.renderHeader(headerView)

	footerY1 := max(maxY-2, 1)
	footerY0 := max(footerY1-2, 1)
	footerView, err := gui.SetView(viewFooter, 0, footerY0, maxX-1, footerY1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	footerView.Frame = false
	footerView.Wrap = true
	footerView.FgColor = palette(current).text | gocui.AttrDim
	footerView.BgColor = gocui.ColorDefault
	footerView.Clear()
	footerView.SetOrigin(0, 0)
	u.renderFooter(footerView)

	bodyTop := 1
	bodyBottom := footerY0 - 1
	if bodyBottom < bodyTop {
		return nil
	}

	dims := computeLayout(maxX, bodyBottom-bodyTop+1)
	leftX1 := dims.postsWidth - 1
	rightX0 := min(leftX1+1, maxX-1)
	rightX1 := maxX - 1
	detailY1 := bodyTop + dims.detailHeight - 1

	postsView, err := gui.SetView(viewPosts, 0, bodyTop, leftX1, bodyBottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	postsView.Title = u.postsTitle()
	applyViewStyle(postsView, current, u.focus == viewPosts, true)
	postsView.Clear()
	u.renderPosts(postsView)
	if u.focus == viewPosts {
		postsView.SetCursor(0, max(u.selectedPost, 0))
	}

	detailView, err := gui.SetView(viewDetail, rightX0, bodyTop, rightX1, detailY1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		detailView.Title = "2 Detail"
		detailView.Wrap = true
	}
	applyViewStyle(detailView, current, u.focus == viewDetail, false)
	detailView.Clear()
	u.renderDetail(detailView)

	tasksView, err := gui.SetView(viewTasks, rightX0, detailY1+1, rightX1, bodyBottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	tasksView.Title = u.tasksTitle()
	applyViewStyle(tasksView, current, u.focus == viewTasks, true)
	tasksView.Clear()
	u.renderTasks(tasksView)
	if u.focus == viewTasks {
		tasksView.SetCursor(0, max(u.selectedTask, 0))
	}

	_, _ = gui.SetViewOnTop(viewHeader)
	_, _ = gui.SetViewOnTop(viewFooter)

	if u.input != nil {
		if err := u.showInput(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewInput)
	}

	if u.helpActive {
		if err := u.showHelp(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewHelp)
	}

	if gui.CurrentView() == nil {
		_, _ = gui.SetCurrentView(u.focus)
	}
	gui.Cursor = u.input != nil
	return nil
}

type layout struct {
	postsWidth   int
	detailHeight int
}

func computeLayout(width, height int) layout {
	safeWidth := max(width, 40)
	safeHeight := max(height, 8)

	postsWidth := safeWidth * 11 / 20
	if postsWidth < 30 {
		postsWidth = 30
	}
	if postsWidth > safeWidth-20 {
		postsWidth = safeWidth / 2
	}

	detailHeight := safeHeight * 45 / 100
	if detailHeight < 4 {
		detailHeight = 4
	}
	if safeHeight-detailHeight < 4 {
		detailHeight = max(safeHeight-4, 3)
	}

	return layout{postsWidth: postsWidth, detailHeight: detailHeight}
}

func (u *UI) renderHeader(w io.Writer) {
	snapshot := u.posts.Snapshot()
	search := strings.TrimSpace(snapshot.Query)
	if search == "" {
		search = "type / to search"
	}
	stats := u.tasks.Stats()
	fmt.Fprintf(w, "Search: %s | Page: %s | Filter: %s | Tasks: %d total, %d active, %d completed | Theme: %s",
		search, pageLabel(snapshot.Page), u.tasks.Filter(), stats.Total, stats.Active, stats.Completed, u.theme.Theme())
}

func (u *UI) renderFooter(w io.Writer) {
	fmt.Fprintln(w, "/ search | n/p page | a add | x toggle | d delete | f filter | t theme | r refetch")
	fmt.Fprintln(w, "tab cycle | 1-3 panes | j/k move | ? help | q quit")
	if u.status != "" {
		fmt.Fprint(w, u.status)
	}
}

func (u *UI) postsTitle() string {
	snapshot := u.posts.Snapshot()
	if snapshot.Page.TotalPages == 0 {
		return "1 Posts"
	}
	return fmt.Sprintf("1 Posts (%s)", formatWindow(snapshot.Window, snapshot.Page.CurrentPage))
}

func (u *UI) renderPosts(w io.Writer) {
	snapshot := u.posts.Snapshot()
	switch {
	case snapshot.Loading:
		fmt.Fprint(w, "Loading posts...")
		return
	case snapshot.Err != nil:
		fmt.Fprintf(w, "Failed to load posts: %s\nPress r to retry.", snapshot.Err)
		return
	case !snapshot.Loaded:
		fmt.Fprint(w, "Press r to load posts.")
		return
	case len(snapshot.Page.Items) == 0:
		fmt.Fprint(w, "No posts found.")
		return
	}

	for i, post := range snapshot.Page.Items {
		fmt.Fprintf(w, "%s %s\n", selectionPrefix(i == u.selectedPost, u.focus == viewPosts), formatPostSummary(post))
	}
}

func (u *UI) tasksTitle() string {
	return fmt.Sprintf("3 Tasks [%s]", u.tasks.Filter())
}

func (u *UI) renderTasks(w io.Writer) {
	visible := u.tasks.Visible()
	if len(visible) == 0 {
		if u.tasks.Filter() == model.StatusAll {
			fmt.Fprint(w, "No tasks yet. Press a to add one.")
		} else {
			fmt.Fprintf(w, "No %s tasks.", u.tasks.Filter())
		}
		return
	}
	for i, task := range visible {
		fmt.Fprintf(w, "%s %s\n", selectionPrefix(i == u.selectedTask, u.focus == viewTasks), formatTaskSummary(task))
	}
}

func (u *UI) renderDetail(w io.Writer) {
	if u.focus == viewTasks {
		task, ok := u.currentTask()
		if !ok {
			fmt.Fprint(w, "No task selected")
			return
		}
		fmt.Fprint(w, strings.Join(taskDetailLines(task, u.tasks.Stats()), "\n"))
		return
	}

	post, ok := u.currentPost()
	if !ok {
		fmt.Fprint(w, "No post selected")
		return
	}
	fmt.Fprint(w, strings.Join(postDetailLines(post), "\n"))
}

func (u *UI) currentPost() (model.Post, bool) {
	items := u.posts.Snapshot().Page.Items
	if u.selectedPost >= 0 && u.selectedPost < len(items) {
		return items[u.selectedPost], true
	}
	return model.Post{}, false
}

func (u *UI) currentTask() (model.Task, bool) {
	visible := u.tasks.Visible()
	if u.selectedTask >= 0 && u.selectedTask < len(visible) {
		return visible[u.selectedTask], true
	}
	return model.Task{}, false
}

func (u *UI) clampSelection() {
	postCount := len(u.posts.Snapshot().Page.Items)
	if u.selectedPost >= postCount {
		u.selectedPost = max(postCount-1, 0)
	}
	taskCount := len(u.tasks.Visible())
	if u.selectedTask >= taskCount {
		u.selectedTask = max(taskCount-1, 0)
	}
}

// fetchPosts loads the collection off the UI goroutine. Without a gui the
// load runs inline.
func (u *UI) fetchPosts(gui *gocui.Gui) {
	u.status = "Loading posts..."
	if gui == nil {
		u.finishFetch(u.posts.Load(u.ctx))
		return
	}
	go func() {
		err := u.posts.Load(u.ctx)
		gui.Update(func(*gocui.Gui) error {
			u.finishFetch(err)
			return nil
		})
	}()
}

func (u *UI) finishFetch(err error) {
	switch {
	case errors.Is(err, board.ErrFetchInFlight):
		u.status = "A fetch is already running"
	case err != nil:
		u.logger.Error("fetch posts", slog.String("error", err.Error()))
		u.status = "Fetch failed: " + err.Error()
	default:
		u.selectedPost = 0
		u.status = fmt.Sprintf("Loaded %d posts", u.posts.Snapshot().Page.TotalItems)
	}
}

func (u *UI) refetch(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.fetchPosts(gui)
	return nil
}

func (u *UI) nextPage(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.posts.NextPage() {
		u.selectedPost = 0
	}
	return nil
}

func (u *UI) prevPage(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.posts.PrevPage() {
		u.selectedPost = 0
	}
	return nil
}

func (u *UI) startSearch(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.input = &inputState{kind: inputSearch, value: u.posts.Snapshot().Query}
	return nil
}

func (u *UI) startAddTask(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.input = &inputState{kind: inputAddTask}
	return nil
}

func (u *UI) submitInput(gui *gocui.Gui, _ *gocui.View) error {
	if u.input == nil {
		return nil
	}

	switch u.input.kind {
	case inputSearch:
		u.posts.SetQuery(strings.TrimSpace(u.input.value))
		u.selectedPost = 0
		u.status = ""
	case inputAddTask:
		_, err := u.tasks.Add(u.ctx, u.input.value)
		var validationErr *tasks.ValidationError
		switch {
		case errors.As(err, &validationErr):
			// keep the popup open for correction
			u.status = err.Error()
			return nil
		case err != nil:
			u.logger.Error("save tasks", slog.String("error", err.Error()))
			u.status = "Added task, but saving failed: " + err.Error()
		default:
			u.status = "Added task"
		}
	}

	return u.closeInput(gui)
}

func (u *UI) cancelInput(gui *gocui.Gui, _ *gocui.View) error {
	if u.input == nil {
		return nil
	}
	return u.closeInput(gui)
}

func (u *UI) closeInput(gui *gocui.Gui) error {
	u.input = nil
	u.clampSelection()
	if gui != nil {
		_ = gui.DeleteView(viewInput)
		_, _ = gui.SetCurrentView(u.focus)
	}
	return nil
}

func (u *UI) showInput(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(40, maxX/2)
	height := 2
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewInput, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Wrap = false
	}
	view.Title = u.input.title()
	view.Editable = true
	view.KeybindOnEdit = true
	view.Editor = u.editor
	u.editor.render(view)
	_, _ = gui.SetCurrentView(viewInput)
	return nil
}

func (u *UI) toggleTask(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() || u.focus != viewTasks {
		return nil
	}
	task, ok := u.currentTask()
	if !ok {
		return nil
	}
	if err := u.tasks.Toggle(u.ctx, task.ID); err != nil {
		u.status = err.Error()
		return nil
	}
	u.status = ""
	u.clampSelection()
	return nil
}

func (u *UI) deleteTask(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() || u.focus != viewTasks {
		return nil
	}
	task, ok := u.currentTask()
	if !ok {
		return nil
	}
	if err := u.tasks.Delete(u.ctx, task.ID); err != nil {
		u.status = err.Error()
		return nil
	}
	u.status = "Deleted task"
	u.clampSelection()
	return nil
}

// cycleFilter keeps the task selection index; only a search resets the
// posts page.
func (u *UI) cycleFilter(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.tasks.SetFilter(u.tasks.Filter().Next())
	u.clampSelection()
	return nil
}

func (u *UI) toggleTheme(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	next, err := u.theme.Toggle(u.ctx)
	if err != nil {
		u.status = err.Error()
		return nil
	}
	u.status = fmt.Sprintf("Theme: %s", next)
	return nil
}

func (u *UI) switchFocus(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewPosts:
		return u.setFocus(gui, viewDetail)
	case viewDetail:
		return u.setFocus(gui, viewTasks)
	default:
		return u.setFocus(gui, viewPosts)
	}
}

func (u *UI) focusPosts(gui *gocui.Gui, _ *gocui.View) error {
	return u.setFocus(gui, viewPosts)
}

func (u *UI) focusDetail(gui *gocui.Gui, _ *gocui.View) error {
	return u.setFocus(gui, viewDetail)
}

func (u *UI) focusTasks(gui *gocui.Gui, _ *gocui.View) error {
	return u.setFocus(gui, viewTasks)
}

func (u *UI) setFocus(gui *gocui.Gui, name string) error {
	if u.inputActive() {
		return nil
	}
	u.focus = name
	if gui != nil {
		_, _ = gui.SetCurrentView(name)
	}
	return nil
}

func (u *UI) moveDown(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewPosts:
		if u.selectedPost < len(u.posts.Snapshot().Page.Items)-1 {
			u.selectedPost++
		}
	case viewTasks:
		if u.selectedTask < len(u.tasks.Visible())-1 {
			u.selectedTask++
		}
	}
	return nil
}

func (u *UI) moveUp(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewPosts:
		if u.selectedPost > 0 {
			u.selectedPost--
		}
	case viewTasks:
		if u.selectedTask > 0 {
			u.selectedTask--
		}
	}
	return nil
}

func (u *UI) onListClick(gui *gocui.Gui, viewName string, opts gocui.ViewMouseBindingOpts) error {
	if u.inputActive() {
		return nil
	}
	view, err := gui.View(viewName)
	if err != nil {
		return nil
	}

	_, y0, _, _ := view.Dimensions()
	_, oy := view.Origin()
	row := max(opts.Y-y0-1+oy, 0)

	switch viewName {
	case viewPosts:
		u.selectedPost = min(row, len(u.posts.Snapshot().Page.Items)-1)
	case viewTasks:
		u.selectedTask = min(row, len(u.tasks.Visible())-1)
	}
	u.clampSelection()
	return u.setFocus(gui, viewName)
}

func (u *UI) bindMouseScroll(gui *gocui.Gui) error {
	for _, name := range []string{viewPosts, viewDetail, viewTasks} {
		if err := gui.SetKeybinding(name, gocui.MouseWheelUp, gocui.ModNone, u.scrollUp); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, gocui.MouseWheelDown, gocui.ModNone, u.scrollDown); err != nil {
			return err
		}
	}
	return nil
}

func (u *UI) scrollUp(gui *gocui.Gui, view *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if view == nil {
		view = gui.CurrentView()
	}
	if view != nil {
		view.ScrollUp(1)
	}
	return nil
}

func (u *UI) scrollDown(gui *gocui.Gui, view *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if view == nil {
		view = gui.CurrentView()
	}
	if view != nil {
		view.ScrollDown(1)
	}
	return nil
}

func (u *UI) toggleHelp(_ *gocui.Gui, _ *gocui.View) error {
	if u.input != nil {
		return nil
	}
	u.helpActive = !u.helpActive
	return nil
}

func (u *UI) closeHelp(gui *gocui.Gui, _ *gocui.View) error {
	u.helpActive = false
	if gui != nil {
		_ = gui.DeleteView(viewHelp)
		_, _ = gui.SetCurrentView(u.focus)
	}
	return nil
}

func (u *UI) showHelp(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(60, maxX/2)
	height := 16
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewHelp, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Title = "Help"
		view.Wrap = true
	}
	view.Clear()
	fmt.Fprint(view, helpText())
	_, _ = gui.SetCurrentView(viewHelp)
	return nil
}

func (u *UI) inputActive() bool {
	return u.input != nil || u.helpActive
}

func (u *UI) quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func helpText() string {
	return strings.Join([]string{
		"Navigation:",
		"  Tab cycle panes | 1 Posts | 2 Detail | 3 Tasks",
		"  j/k or arrows move selection",
		"  n/p or left/right change page (Posts)",
		"  mouse click to focus/select, wheel scrolls",
		"",
		"Posts:",
		"  / search title and body | r refetch",
		"",
		"Tasks:",
		"  a add | x or space toggle | d delete",
		"  f cycle filter (all/active/completed)",
		"",
		"Other:",
		"  t toggle theme | ? help | esc/q close help | q quit",
	}, "\n")
}

type themeColors struct {
	text   gocui.Attribute
	frame  gocui.Attribute
	accent gocui.Attribute
	selBg  gocui.Attribute
	selFg  gocui.Attribute
}

func palette(current model.Theme) themeColors {
	if current == model.ThemeDark {
		return themeColors{
			text:   gocui.ColorWhite,
			frame:  gocui.ColorWhite,
			accent: gocui.ColorCyan,
			selBg:  gocui.ColorBlue,
			selFg:  gocui.ColorWhite,
		}
	}
	return themeColors{
		text:   gocui.ColorDefault,
		frame:  gocui.ColorDefault,
		accent: gocui.ColorBlue,
		selBg:  gocui.ColorCyan,
		selFg:  gocui.ColorBlack,
	}
}

func applyViewStyle(view *gocui.View, current model.Theme, focused bool, highlight bool) {
	colors := palette(current)
	view.Frame = true
	view.Highlight = focused && highlight
	view.HighlightInactive = false
	view.FgColor = colors.text
	view.SelBgColor = colors.selBg
	view.SelFgColor = colors.selFg
	view.InactiveViewSelBgColor = gocui.ColorDefault
	if focused {
		view.FrameColor = colors.accent
		view.TitleColor = colors.accent
	} else {
		view.FrameColor = colors.frame
		view.TitleColor = colors.frame
	}
}
