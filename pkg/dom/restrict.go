package dom

// restricted lists, for each restricted container kind, the only child kinds
// it accepts. Kinds absent from the table accept every kind.
var restricted = map[Kind][]Kind{
	KindHead:  {KindTitle, KindMeta, KindRel, KindScript, KindStyle, KindBase},
	KindList:  {KindListItem},
	KindTable: {KindRow},
	KindRow:   {KindCell, KindHeaderCell},
	KindHTML:  nil,
	KindText:  nil,
}

// Accepts reports whether a parent of kind parent may hold a child of kind
// child. The typed Append methods of Head, List, Table and Row only compile
// for accepted kinds; Accepts is the same rule for callers that only know
// kinds at run time.
func Accepts(parent, child Kind) bool {
	allowed, ok := restricted[parent]
	if !ok {
		return true
	}
	for _, k := range allowed {
		if k == child {
			return true
		}
	}
	return false
}

// IsRestricted reports whether kind only accepts a closed set of child kinds.
func IsRestricted(kind Kind) bool {
	_, ok := restricted[kind]
	return ok
}

// AcceptedKinds returns the child kinds a restricted container accepts, or
// nil if kind is not restricted.
func AcceptedKinds(kind Kind) []Kind {
	allowed := restricted[kind]
	if len(allowed) == 0 {
		return nil
	}
	out := make([]Kind, len(allowed))
	copy(out, allowed)
	return out
}
