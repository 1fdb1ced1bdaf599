package kenyaloc

// FindTown resolves label by exact lookup: first as a full "Town, County"
// label, then as a town name, then as an alias. Empty or blank labels never
// match.
func (idx *Index) FindTown(label string) (TownRef, bool) {
	return idx.findNormalized(Normalize(label))
}

// FindTownCoords returns the coordinates of the town FindTown resolves.
func (idx *Index) FindTownCoords(label string) (Point, bool) {
	ref, ok := idx.FindTown(label)
	if !ok {
		return Point{}, false
	}
	return ref.Town.Point(), true
}

func (idx *Index) findNormalized(key string) (TownRef, bool) {
	if key == "" {
		return TownRef{}, false
	}
	if ref, ok := idx.townByFullLabel[key]; ok {
		return ref, true
	}
	if ref, ok := idx.townByName[key]; ok {
		return ref, true
	}
	if ref, ok := idx.townByAlias[key]; ok {
		return ref, true
	}
	return TownRef{}, false
}
