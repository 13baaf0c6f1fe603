package models

// MemorialEvent is a commemorative event (anniversary, exhibition, rally).
type MemorialEvent struct{ ContentBase }

func (MemorialEvent) TableName() string { return "events" }

// Location is a memorial site; Address and the coordinate pair live on
// ContentBase. New locations start unpublished.
type Location struct{ ContentBase }

func (Location) TableName() string { return "locations" }
