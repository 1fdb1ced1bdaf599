package kenyaloc

// County returns the county whose name matches name after normalization,
// so "TAITA-TAVETA" and "taita-taveta" resolve to the same county.
func (idx *Index) County(name string) (County, bool) {
	ci, ok := idx.countyIndex(name)
	if !ok {
		return County{}, false
	}
	return idx.gazetteer[ci].clone(), true
}

// IsCounty reports whether name resolves to a known county.
func (idx *Index) IsCounty(name string) bool {
	_, ok := idx.countyIndex(name)
	return ok
}

// Counties returns the county names in declaration order.
func (idx *Index) Counties() []string {
	names := make([]string, len(idx.gazetteer))
	for i, c := range idx.gazetteer {
		names[i] = c.Name
	}
	return names
}

// countyIndex resolves a raw county name to its gazetteer position.
func (idx *Index) countyIndex(name string) (int, bool) {
	key := Normalize(name)
	if key == "" {
		return 0, false
	}
	return idx.countyByNormalized(key)
}

func (idx *Index) countyByNormalized(key string) (int, bool) {
	ci, ok := idx.countyByName[key]
	return ci, ok
}
