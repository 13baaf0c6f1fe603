package models

// Written-word archive entities: the bilingual Body pair holds the markdown
// text, Source/OccurredAt the provenance.

type Speech struct{ ContentBase }

func (Speech) TableName() string { return "speeches" }

type Writing struct{ ContentBase }

func (Writing) TableName() string { return "writings" }

type Poem struct{ ContentBase }

func (Poem) TableName() string { return "poems" }

type Quote struct{ ContentBase }

func (Quote) TableName() string { return "quotes" }

type News struct{ ContentBase }

func (News) TableName() string { return "news_items" }
