package table

// Group is an amarre: a stack of two or more cards that move and scale as
// one. Members are object IDs in insertion order; the first member is the
// anchor whose rect the group mirrors. Both directions of the card<->group
// relation are non-owning handles.
type Group struct {
	handle  GroupHandle
	members []string
}

func (g *Group) Handle() GroupHandle { return g.handle }

func (g *Group) Size() int { return len(g.members) }

func (g *Group) Members() []string {
	return append([]string(nil), g.members...)
}

// Groups exposes the live group table, for tests and rendering.
func (s *Scene) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// GroupByHandle resolves a handle against the tracked group table; nil for
// stale or zero handles.
func (s *Scene) GroupByHandle(h GroupHandle) *Group {
	if h == 0 {
		return nil
	}
	for _, g := range s.groups {
		if g.handle == h {
			return g
		}
	}
	return nil
}

// groupObjects resolves the member IDs to live objects, dropping any stale
// entries from the group on the way.
func (s *Scene) groupObjects(g *Group) []*Object {
	live := g.members[:0]
	objs := make([]*Object, 0, len(g.members))
	for _, id := range g.members {
		if o := s.ObjectByID(id); o != nil {
			live = append(live, id)
			objs = append(objs, o)
		}
	}
	g.members = live
	return objs
}

// GroupAnchor is the first live member; the group's rect mirrors it.
func (s *Scene) GroupAnchor(g *Group) *Object {
	objs := s.groupObjects(g)
	if len(objs) == 0 {
		return nil
	}
	return objs[0]
}

// MergeCards joins a dropped card (or its whole group) with the overlapping
// target card: creating a new group, absorbing into an existing one, or
// unioning two groups with the target's group as survivor. Afterwards all
// members share the anchor's position at scale 1.0.
func (s *Scene) MergeCards(dropped, target *Object) {
	if dropped == nil || target == nil || dropped == target {
		return
	}
	if dropped.Kind != KindCard || target.Kind != KindCard {
		return
	}
	if dropped.inHand || target.inHand {
		return
	}
	gd := s.GroupByHandle(dropped.group)
	gt := s.GroupByHandle(target.group)

	switch {
	case gd == nil && gt == nil:
		g := &Group{handle: s.nextGroup, members: []string{target.ID, dropped.ID}}
		s.nextGroup++
		s.groups = append(s.groups, g)
		target.group = g.handle
		dropped.group = g.handle
	case gd == nil:
		gt.members = append(gt.members, dropped.ID)
		dropped.group = gt.handle
	case gt == nil:
		gd.members = append(gd.members, target.ID)
		target.group = gd.handle
	case gd != gt:
		// Union: the target's group survives, the dropped one is emptied.
		for _, o := range s.groupObjects(gd) {
			o.group = gt.handle
			gt.members = append(gt.members, o.ID)
		}
		gd.members = nil
		s.pruneGroup(gd)
	default:
		return
	}

	survivor := s.GroupByHandle(target.group)
	if survivor != nil {
		s.alignGroup(survivor)
	}
}

// alignGroup stacks every member onto the anchor at scale 1.0.
func (s *Scene) alignGroup(g *Group) {
	objs := s.groupObjects(g)
	if len(objs) == 0 {
		return
	}
	anchor := objs[0]
	for _, o := range objs {
		o.Pos = anchor.Pos
		o.SetScale(1.0)
	}
}

// DetachFromGroup pulls a single card out of its amarre; a group left with
// fewer than two members is dissolved.
func (s *Scene) DetachFromGroup(card *Object) {
	g := s.GroupByHandle(card.group)
	card.group = 0
	if g == nil {
		return
	}
	for i, id := range g.members {
		if id == card.ID {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	s.pruneGroup(g)
}

// pruneGroup dissolves groups that fell below two live members: the
// remainder reverts to independent cards at scale 1.0.
func (s *Scene) pruneGroup(g *Group) {
	if len(s.groupObjects(g)) >= 2 {
		return
	}
	for _, o := range s.groupObjects(g) {
		o.group = 0
		o.SetScale(1.0)
	}
	for i, other := range s.groups {
		if other == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			break
		}
	}
}

// pruneGroups sweeps the whole table, used after removals.
func (s *Scene) pruneGroups() {
	for i := len(s.groups) - 1; i >= 0; i-- {
		s.pruneGroup(s.groups[i])
	}
}
