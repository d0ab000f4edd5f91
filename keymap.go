package trui

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyCtrlB, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// KeyOf matches key with any modifiers.
func KeyOf(key Key, mods ...Modifier) KeyPattern {
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return KeyPattern{Key: key, Mod: combined}
}

// RuneOf matches the printable character r.
func RuneOf(r rune) KeyPattern {
	return KeyPattern{Rune: r}
}

// AnyRune matches every printable character.
func AnyRune() KeyPattern {
	return KeyPattern{AnyRune: true}
}

// Matches reports whether ev satisfies the pattern.
func (p KeyPattern) Matches(ev KeyEvent) bool {
	switch {
	case p.AnyRune:
		if ev.Key != KeyRune {
			return false
		}
	case p.Rune != 0:
		if ev.Key != KeyRune || ev.Rune != p.Rune {
			return false
		}
	case p.Key != 0:
		if ev.Key != p.Key {
			return false
		}
	default:
		return false
	}

	if p.RequireNoMods {
		return ev.Mod == 0
	}
	if p.Mod != 0 {
		return ev.Mod == p.Mod
	}
	return true
}

// OnKeyMatch calls f for key events inside child that match p and that
// no descendant handled. Keys that do not match keep propagating.
func OnKeyMatch[T, A any](child View[T, A], p KeyPattern, f func(data *T)) View[T, A] {
	return handlerView[T, A]{child: child, sense: senseKey, keys: p.Matches, handle: func(data *T, msg any) MessageResult[A] {
		ev, ok := msg.(KeyEvent)
		if !ok || !p.Matches(ev) {
			return Stale[A](msg)
		}
		f(data)
		return RequestRebuild[A]()
	}}
}
