package dlist

import "fmt"

type layer struct {
	name       string
	selectable bool
}

// SetLayer makes the named layer current, creating it if needed, and
// returns its number. New primitives belong to the current layer.
func (dl *DisplayList) SetLayer(name string) int {
	for i, l := range dl.layers {
		if l.name == name {
			dl.layer = i
			return i
		}
	}
	dl.layers = append(dl.layers, layer{name: name, selectable: true})
	dl.layer = len(dl.layers) - 1
	return dl.layer
}

// SetLayerSelectable controls whether primitives of the named layer can
// be picked.
func (dl *DisplayList) SetLayerSelectable(name string, on bool) error {
	for i := range dl.layers {
		if dl.layers[i].name == name {
			dl.layers[i].selectable = on
			return nil
		}
	}
	return fmt.Errorf("%w: no layer %q", ErrInvalidArgument, name)
}

// SetItem makes the named item current, creating it if needed, and
// returns its number.
func (dl *DisplayList) SetItem(name string) int {
	for i, n := range dl.items {
		if n == name {
			dl.item = i
			return i
		}
	}
	dl.items = append(dl.items, name)
	dl.item = len(dl.items) - 1
	return dl.item
}

func (dl *DisplayList) layerName(i int) string {
	if i >= 0 && i < len(dl.layers) {
		return dl.layers[i].name
	}
	return ""
}

func (dl *DisplayList) itemName(i int) string {
	if i >= 0 && i < len(dl.items) {
		return dl.items[i]
	}
	return ""
}

func (dl *DisplayList) layerSelectable(i int) bool {
	return i < 0 || i >= len(dl.layers) || dl.layers[i].selectable
}
