package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// Every "(" pushes a balanced item and every ")" pops one. The item remembers
// which function or pseudo opened the frame because several of them change
// how the contents are interpreted: strings inside "url(" are requests,
// ":local(" and ":global(" switch the mode, "supports(" suspends @import url
// collection, and so on.
//
// The stack doubles as the mode stack. The bare ":local"/":global" pseudo
// classes push class items that are not paired with a ")" and are instead
// popped at the next selector boundary by popModePseudoClass.

type balancedItemKind uint8

const (
	itemOther balancedItemKind = iota
	itemURL
	itemImageSet
	itemLayer
	itemSupports
	itemPaletteMix
	itemLocalFn
	itemGlobalFn
	itemLocalClass
	itemGlobalClass
)

func balancedItemKindFromName(name string) balancedItemKind {
	switch name {
	case "url(":
		return itemURL
	case "image-set(":
		return itemImageSet
	case "layer(":
		return itemLayer
	case "supports(":
		return itemSupports
	case "palette-mix(":
		return itemPaletteMix
	case ":local(":
		return itemLocalFn
	case ":global(":
		return itemGlobalFn
	case ":local":
		return itemLocalClass
	case ":global":
		return itemGlobalClass
	}
	if withVendorPrefixedEq(name, "image-set(", false) {
		return itemImageSet
	}
	return itemOther
}

func (kind balancedItemKind) isModeLocal() bool {
	return kind == itemLocalFn || kind == itemLocalClass
}

func (kind balancedItemKind) isModeGlobal() bool {
	return kind == itemGlobalFn || kind == itemGlobalClass
}

func (kind balancedItemKind) isModeFunction() bool {
	return kind == itemLocalFn || kind == itemGlobalFn
}

func (kind balancedItemKind) isModeClass() bool {
	return kind == itemLocalClass || kind == itemGlobalClass
}

type balancedItem struct {
	kind balancedItemKind
	rng  logger.Range
}

func newBalancedItem(name string, start int32, end int32) balancedItem {
	return balancedItem{kind: balancedItemKindFromName(name), rng: logger.RangeBetween(start, end)}
}

func newOtherBalancedItem(start int32, end int32) balancedItem {
	return balancedItem{kind: itemOther, rng: logger.RangeBetween(start, end)}
}

type balancedStack struct {
	items []balancedItem
}

func (stack *balancedStack) len() int {
	return len(stack.items)
}

func (stack *balancedStack) last() *balancedItem {
	if len(stack.items) == 0 {
		return nil
	}
	return &stack.items[len(stack.items)-1]
}

func (stack *balancedStack) isEmpty() bool {
	return len(stack.items) == 0
}

func (stack *balancedStack) push(item balancedItem, modeData *modeData) {
	if modeData != nil {
		if item.kind.isModeLocal() {
			modeData.setCurrentMode(css_ast.ModeLocal)
		} else if item.kind.isModeGlobal() {
			modeData.setCurrentMode(css_ast.ModeGlobal)
		}

		if item.kind.isModeFunction() {
			modeData.insideModeFunction++
		} else if item.kind.isModeClass() {
			modeData.insideModeClass++
		}
	}
	stack.items = append(stack.items, item)
}

func (stack *balancedStack) pop(modeData *modeData) (balancedItem, bool) {
	item, ok := stack.popWithoutModeData()
	if !ok {
		return balancedItem{}, false
	}
	if modeData != nil {
		if item.kind.isModeFunction() {
			modeData.insideModeFunction--
		} else if item.kind.isModeClass() {
			modeData.insideModeClass--
		}
		stack.updateCurrentMode(modeData)
	}
	return item, true
}

func (stack *balancedStack) popWithoutModeData() (balancedItem, bool) {
	if len(stack.items) == 0 {
		return balancedItem{}, false
	}
	item := stack.items[len(stack.items)-1]
	stack.items = stack.items[:len(stack.items)-1]
	return item, true
}

// popModePseudoClass pops the contiguous run of ":local"/":global" class
// items at the top of the stack. This gives the bare pseudo classes a scope
// that only extends to the end of the current compound selector.
func (stack *balancedStack) popModePseudoClass(modeData *modeData) {
	for {
		last := stack.last()
		if last == nil || !last.kind.isModeClass() {
			break
		}
		modeData.insideModeClass--
		stack.items = stack.items[:len(stack.items)-1]
	}
	stack.updateCurrentMode(modeData)
}

func (stack *balancedStack) updateCurrentMode(modeData *modeData) {
	modeData.setCurrentMode(stack.topmostMode(modeData))
}

func (stack *balancedStack) updatePropertyMode(modeData *modeData) {
	modeData.setPropertyMode(stack.topmostMode(modeData))
}

// The current mode is decided by the nearest enclosing mode frame, or the
// module's default when there is none.
func (stack *balancedStack) topmostMode(modeData *modeData) css_ast.Mode {
	for i := len(stack.items) - 1; i >= 0; i-- {
		switch stack.items[i].kind {
		case itemLocalFn, itemLocalClass:
			return css_ast.ModeLocal
		case itemGlobalFn, itemGlobalClass:
			return css_ast.ModeGlobal
		}
	}
	return modeData.defaultMode()
}

// withVendorPrefixedEq matches "left" against "right" with one of the
// "-webkit-", "-moz-", "-ms-", or "-o-" prefixes in front, ignoring ASCII
// case after the prefix. With atRule set, "left" must also carry a leading
// "@".
func withVendorPrefixedEq(left string, right string, atRule bool) bool {
	if atRule {
		var found bool
		if left, found = strings.CutPrefix(left, "@"); !found {
			return false
		}
	}
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if rest, found := strings.CutPrefix(left, prefix); found && strings.EqualFold(rest, right) {
			return true
		}
	}
	return false
}
