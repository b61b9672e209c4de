package rules

// Merge combines the system and user rule layers into one ordered
// list. Keys keep the position where they first appear scanning
// system then user; for keys present in both layers the user's rule
// content wins while holding the system entry's position. Keys unique
// to the user layer are appended in user declaration order. Duplicate
// keys within one layer follow the same policy: last writer's content
// at the first occurrence's position. Merging never fails.
//
// Keys compare case-sensitively, so "easter" and "Easter" are
// distinct periods.
func Merge(system, user RuleList) RuleList {
	merged := make(RuleList, 0, len(system)+len(user))
	position := make(map[string]int, len(system)+len(user))

	place := func(r Rule) {
		if at, seen := position[r.Key]; seen {
			merged[at] = r
			return
		}
		position[r.Key] = len(merged)
		merged = append(merged, r)
	}

	for _, r := range system {
		place(r)
	}
	for _, r := range user {
		place(r)
	}
	return merged
}
