package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	left         key.Binding
	right        key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	newItem      key.Binding
	toggle       key.Binding
	edit         key.Binding
	delete       key.Binding
	archive      key.Binding
	deleteBought key.Binding
	deleteAll    key.Binding
	archives     key.Binding
	undo         key.Binding
	refresh      key.Binding
	follow       key.Binding
	password     key.Binding
	switchList   key.Binding
	newList      key.Binding
	copy         key.Binding
	info         key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	left:         key.NewBinding(key.WithKeys("left")),
	right:        key.NewBinding(key.WithKeys("right")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:      key.NewBinding(key.WithKeys("n")),
	toggle:       key.NewBinding(key.WithKeys(" ", "x")),
	edit:         key.NewBinding(key.WithKeys("e")),
	delete:       key.NewBinding(key.WithKeys("d")),
	archive:      key.NewBinding(key.WithKeys("a")),
	deleteBought: key.NewBinding(key.WithKeys("b")),
	deleteAll:    key.NewBinding(key.WithKeys("D")),
	archives:     key.NewBinding(key.WithKeys("A")),
	undo:         key.NewBinding(key.WithKeys("u")),
	refresh:      key.NewBinding(key.WithKeys("r")),
	follow:       key.NewBinding(key.WithKeys("f")),
	password:     key.NewBinding(key.WithKeys("p")),
	switchList:   key.NewBinding(key.WithKeys("o")),
	newList:      key.NewBinding(key.WithKeys("c")),
	copy:         key.NewBinding(key.WithKeys("y")),
	info:         key.NewBinding(key.WithKeys("v")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n")),
}
