package models

// Media gallery entities. Each gets its own table; the shape is the shared
// ContentBase with MediaURL/CoverURL holding the caller-supplied locations.

type Video struct{ ContentBase }

func (Video) TableName() string { return "videos" }

type Photo struct{ ContentBase }

func (Photo) TableName() string { return "photos" }

type Poster struct{ ContentBase }

func (Poster) TableName() string { return "posters" }

type Audio struct{ ContentBase }

func (Audio) TableName() string { return "audios" }

type Document struct{ ContentBase }

func (Document) TableName() string { return "documents" }
