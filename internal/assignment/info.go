package assignment

// Info describes who holds an item.
type Info struct {
	ItemID string
	// People are the holders in first-assignment order.
	People     []string
	Count      int
	IsAssigned bool
	IsShared   bool
}

// Info returns the holders of an item. A unit claim always comes with a holding,
// so scanning holdings covers claimants as well.
func (s State) Info(itemID string) Info {
	info := Info{ItemID: itemID}
	for _, person := range s.people {
		if s.Holds(person, itemID) {
			info.People = append(info.People, person)
		}
	}
	info.Count = len(info.People)
	info.IsAssigned = info.Count >= 1
	info.IsShared = info.Count > 1
	return info
}
