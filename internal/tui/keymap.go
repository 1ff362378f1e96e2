package tui

import "charm.land/bubbles/v2/key"

// boardKeyMap holds the bindings active while the todo overlay is closed.
type boardKeyMap struct {
	quit        key.Binding
	toggleHelp  key.Binding
	reload      key.Binding
	moveLeft    key.Binding
	moveRight   key.Binding
	moveUp      key.Binding
	moveDown    key.Binding
	addProject  key.Binding
	deleteProj  key.Binding
	editProject key.Binding
	openDir     key.Binding
	openEditor  key.Binding
	openTmux    key.Binding
	openBoth    key.Binding
	openTodo    key.Binding
	progress    key.Binding
	regress     key.Binding
	priorityUp  key.Binding
	priorityDn  key.Binding
	cycleMode   key.Binding
	yankPath    key.Binding
}

// newBoardKeyMap constructs the board bindings.
func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
		toggleHelp:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		moveLeft:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
		moveRight:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
		moveUp:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
		moveDown:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
		addProject:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add project")),
		deleteProj:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete project")),
		editProject: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit project")),
		openDir:     key.NewBinding(key.WithKeys("c", "C", "shift+c"), key.WithHelp("c/C", "open directory")),
		openEditor:  key.NewBinding(key.WithKeys("n", "N", "shift+n"), key.WithHelp("n/N", "open editor")),
		openTmux:    key.NewBinding(key.WithKeys("x", "X", "shift+x"), key.WithHelp("x/X", "tmux session")),
		openBoth:    key.NewBinding(key.WithKeys("b", "B", "shift+b"), key.WithHelp("b/B", "directory + editor")),
		openTodo:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "todo list")),
		progress:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "progress")),
		regress:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regress")),
		priorityUp:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "priority up")),
		priorityDn:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "priority down")),
		cycleMode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "color mode")),
		yankPath:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.addProject, k.editProject, k.openTodo, k.progress, k.regress, k.openDir, k.toggleHelp, k.quit}
}

// FullHelp returns every board binding grouped by purpose.
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.moveLeft, k.moveRight, k.moveUp, k.moveDown},
		{k.addProject, k.editProject, k.deleteProj, k.progress, k.regress, k.priorityUp, k.priorityDn},
		{k.openDir, k.openEditor, k.openTmux, k.openBoth, k.yankPath},
		{k.openTodo, k.cycleMode, k.reload, k.toggleHelp, k.quit},
	}
}

// todoKeyMap holds the bindings active while the todo overlay is open.
type todoKeyMap struct {
	close      key.Binding
	toggleHelp key.Binding
	addItem    key.Binding
	deleteItem key.Binding
	editItem   key.Binding
	itemUp     key.Binding
	itemDown   key.Binding
	cardLeft   key.Binding
	cardRight  key.Binding
	cardUp     key.Binding
	cardDown   key.Binding
}

// newTodoKeyMap constructs the overlay bindings.
func newTodoKeyMap() todoKeyMap {
	return todoKeyMap{
		close:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "close list")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		addItem:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		deleteItem: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete item")),
		editItem:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit item")),
		itemUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "item up")),
		itemDown:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "item down")),
		cardLeft:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "column left")),
		cardRight:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "column right")),
		cardUp:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "card up")),
		cardDown:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "card down")),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k todoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.addItem, k.editItem, k.deleteItem, k.itemUp, k.itemDown, k.close}
}

// FullHelp returns every overlay binding grouped by purpose.
func (k todoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addItem, k.editItem, k.deleteItem},
		{k.itemUp, k.itemDown},
		{k.cardLeft, k.cardRight, k.cardUp, k.cardDown},
		{k.toggleHelp, k.close},
	}
}
