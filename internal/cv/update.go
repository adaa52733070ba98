package cv

// Item is the capability shared by all seven collection item types: a
// numeric identifier unique within the item's own collection.
type Item interface {
	ItemID() int64
}

// fieldSetter constrains a pointer to an item type that can write one of
// its text fields by name. Identifiers are deliberately not settable.
type fieldSetter[T any] interface {
	*T
	SetField(field, value string) error
}

// ItemID implementations. Identifiers are minted once at append time and
// never change afterwards.

func (w WorkExperience) ItemID() int64         { return w.ID }
func (e Education) ItemID() int64              { return e.ID }
func (s Skill) ItemID() int64                  { return s.ID }
func (a AcademicWriting) ItemID() int64        { return a.ID }
func (c ConferencePresentation) ItemID() int64 { return c.ID }
func (b BookPublishing) ItemID() int64         { return b.ID }
func (p ProgrammeOrganised) ItemID() int64     { return p.ID }

// SetField writes one text field of a work experience entry by its JSON
// field name. The identifier is not addressable through SetField.
func (w *WorkExperience) SetField(field, value string) error {
	switch field {
	case "jobTitle":
		w.JobTitle = value
	case "company":
		w.Company = value
	case "startDate":
		w.StartDate = value
	case "endDate":
		w.EndDate = value
	case "description":
		w.Description = value
	default:
		return &UnknownFieldError{Collection: CollectionWorkExperience, Field: field}
	}
	return nil
}

// SetField writes one text field of an education entry by its JSON field name.
func (e *Education) SetField(field, value string) error {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return &UnknownFieldError{Collection: CollectionEducation, Field: field}
	}
	return nil
}

// SetField writes one text field of a skill by its JSON field name.
func (s *Skill) SetField(field, value string) error {
	if field != "name" {
		return &UnknownFieldError{Collection: CollectionSkills, Field: field}
	}
	s.Name = value
	return nil
}

// SetField writes one text field of a publication by its JSON field name.
func (a *AcademicWriting) SetField(field, value string) error {
	switch field {
	case "title":
		a.Title = value
	case "journal":
		a.Journal = value
	case "year":
		a.Year = value
	case "doi":
		a.DOI = value
	default:
		return &UnknownFieldError{Collection: CollectionAcademicWritings, Field: field}
	}
	return nil
}

// SetField writes one text field of a conference presentation by its JSON
// field name. The role field accepts only the presenter/delegate values.
func (c *ConferencePresentation) SetField(field, value string) error {
	switch field {
	case "title":
		c.Title = value
	case "conferenceName":
		c.ConferenceName = value
	case "location":
		c.Location = value
	case "date":
		c.Date = value
	case "role":
		if value != RolePresenter && value != RoleDelegate {
			return &InvalidValueError{Collection: CollectionConferencePresentations, Field: field, Value: value}
		}
		c.Role = value
	default:
		return &UnknownFieldError{Collection: CollectionConferencePresentations, Field: field}
	}
	return nil
}

// SetField writes one text field of a book entry by its JSON field name.
func (b *BookPublishing) SetField(field, value string) error {
	switch field {
	case "title":
		b.Title = value
	case "publisher":
		b.Publisher = value
	case "year":
		b.Year = value
	case "isbn":
		b.ISBN = value
	default:
		return &UnknownFieldError{Collection: CollectionBookPublishings, Field: field}
	}
	return nil
}

// SetField writes one text field of an organised programme by its JSON
// field name.
func (p *ProgrammeOrganised) SetField(field, value string) error {
	switch field {
	case "programmeName":
		p.ProgrammeName = value
	case "organisation":
		p.Organisation = value
	case "location":
		p.Location = value
	case "date":
		p.Date = value
	case "role":
		p.Role = value
	default:
		return &UnknownFieldError{Collection: CollectionProgrammesOrganised, Field: field}
	}
	return nil
}

// cloneItems returns a fresh slice holding the same item values.
func cloneItems[T Item](items []T) []T {
	if items == nil {
		return []T{}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func itemIDs[T Item](items []T) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ItemID()
	}
	return ids
}

// appendItem returns a new slice with item added at the end. The input
// slice is left untouched.
func appendItem[T Item](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// removeItem returns a new slice with the item whose identifier equals id
// removed. At most one item is removed and relative order is preserved; a
// missing id is a no-op, not an error.
func removeItem[T Item](items []T, id int64) []T {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if !removed && it.ItemID() == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out
}

// setItemField returns a new slice in which exactly one field of the item
// at index has been replaced. All other items are carried over unchanged.
func setItemField[T Item, PT fieldSetter[T]](collection string, items []T, index int, field, value string) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, &OutOfRangeError{Collection: collection, Index: index, Length: len(items)}
	}
	out := make([]T, len(items))
	copy(out, items)
	if err := PT(&out[index]).SetField(field, value); err != nil {
		return nil, err
	}
	return out, nil
}

// Scalar field names accepted by WithScalar: the personal details fields
// plus the top-level summary.
const (
	FieldFullName = "fullName"
	FieldJobTitle = "jobTitle"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldLinkedIn = "linkedin"
	FieldPhoto    = "photo"
	FieldSummary  = "summary"
)

// WithScalar returns a copy of the document with one scalar field replaced.
func (d Document) WithScalar(field, value string) (Document, error) {
	out := d
	switch field {
	case FieldFullName:
		out.PersonalDetails.FullName = value
	case FieldJobTitle:
		out.PersonalDetails.JobTitle = value
	case FieldEmail:
		out.PersonalDetails.Email = value
	case FieldPhone:
		out.PersonalDetails.Phone = value
	case FieldAddress:
		out.PersonalDetails.Address = value
	case FieldLinkedIn:
		out.PersonalDetails.LinkedIn = value
	case FieldPhoto:
		out.PersonalDetails.Photo = value
	case FieldSummary:
		out.Summary = value
	default:
		return Document{}, &UnknownFieldError{Collection: "personalDetails", Field: field}
	}
	return out, nil
}

// WithItemField returns a copy of the document in which one field of the
// item at index within the named collection has been replaced. The item's
// identifier and position never change.
func (d Document) WithItemField(collection string, index int, field, value string) (Document, error) {
	out := d
	var err error
	switch collection {
	case CollectionWorkExperience:
		out.WorkExperience, err = setItemField[WorkExperience](collection, d.WorkExperience, index, field, value)
	case CollectionEducation:
		out.Education, err = setItemField[Education](collection, d.Education, index, field, value)
	case CollectionSkills:
		out.Skills, err = setItemField[Skill](collection, d.Skills, index, field, value)
	case CollectionAcademicWritings:
		out.AcademicWritings, err = setItemField[AcademicWriting](collection, d.AcademicWritings, index, field, value)
	case CollectionConferencePresentations:
		out.ConferencePresentations, err = setItemField[ConferencePresentation](collection, d.ConferencePresentations, index, field, value)
	case CollectionBookPublishings:
		out.BookPublishings, err = setItemField[BookPublishing](collection, d.BookPublishings, index, field, value)
	case CollectionProgrammesOrganised:
		out.ProgrammesOrganised, err = setItemField[ProgrammeOrganised](collection, d.ProgrammesOrganised, index, field, value)
	default:
		return Document{}, &UnknownCollectionError{Name: collection}
	}
	if err != nil {
		return Document{}, err
	}
	return out, nil
}

// WithAppended returns a copy of the document with a zero-valued item
// carrying the given identifier appended to the named collection, plus the
// appended item itself. Conference presentations default to the presenter
// role, matching the form's add action.
func (d Document) WithAppended(collection string, id int64) (Document, Item, error) {
	out := d
	var item Item
	switch collection {
	case CollectionWorkExperience:
		it := WorkExperience{ID: id}
		out.WorkExperience = appendItem(d.WorkExperience, it)
		item = it
	case CollectionEducation:
		it := Education{ID: id}
		out.Education = appendItem(d.Education, it)
		item = it
	case CollectionSkills:
		it := Skill{ID: id}
		out.Skills = appendItem(d.Skills, it)
		item = it
	case CollectionAcademicWritings:
		it := AcademicWriting{ID: id}
		out.AcademicWritings = appendItem(d.AcademicWritings, it)
		item = it
	case CollectionConferencePresentations:
		it := ConferencePresentation{ID: id, Role: RolePresenter}
		out.ConferencePresentations = appendItem(d.ConferencePresentations, it)
		item = it
	case CollectionBookPublishings:
		it := BookPublishing{ID: id}
		out.BookPublishings = appendItem(d.BookPublishings, it)
		item = it
	case CollectionProgrammesOrganised:
		it := ProgrammeOrganised{ID: id}
		out.ProgrammesOrganised = appendItem(d.ProgrammesOrganised, it)
		item = it
	default:
		return Document{}, nil, &UnknownCollectionError{Name: collection}
	}
	return out, item, nil
}

// WithRemoved returns a copy of the document with the item whose identifier
// equals id removed from the named collection. Removing an absent id is a
// no-op.
func (d Document) WithRemoved(collection string, id int64) (Document, error) {
	out := d
	switch collection {
	case CollectionWorkExperience:
		out.WorkExperience = removeItem(d.WorkExperience, id)
	case CollectionEducation:
		out.Education = removeItem(d.Education, id)
	case CollectionSkills:
		out.Skills = removeItem(d.Skills, id)
	case CollectionAcademicWritings:
		out.AcademicWritings = removeItem(d.AcademicWritings, id)
	case CollectionConferencePresentations:
		out.ConferencePresentations = removeItem(d.ConferencePresentations, id)
	case CollectionBookPublishings:
		out.BookPublishings = removeItem(d.BookPublishings, id)
	case CollectionProgrammesOrganised:
		out.ProgrammesOrganised = removeItem(d.ProgrammesOrganised, id)
	default:
		return Document{}, &UnknownCollectionError{Name: collection}
	}
	return out, nil
}
