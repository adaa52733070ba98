// Package cv defines the CV document model and the generic field update
// protocol used to evolve it. Every operation is copy-on-write: the input
// document is never mutated, so previews and export snapshots can hold a
// Document value without observing changes underneath them.
package cv

// PersonalDetails is the singleton header section of a CV. It carries no
// identifier and is overwritten in place by scalar updates. Photo holds a
// data-URL encoded image, or the empty string when no photo is set.
type PersonalDetails struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	Photo    string `json:"photo"`
}

// WorkExperience is one entry in the work experience collection.
type WorkExperience struct {
	ID          int64  `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one entry in the education collection.
type Education struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Skill is one entry in the skills collection.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AcademicWriting is one entry in the publications collection.
type AcademicWriting struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Journal string `json:"journal"`
	Year    string `json:"year"`
	DOI     string `json:"doi"`
}

// Role values for a ConferencePresentation.
const (
	RolePresenter = "presenter"
	RoleDelegate  = "delegate"
)

// ConferencePresentation is one entry in the conferences collection. When
// Role is RoleDelegate the title is stored but not displayed.
type ConferencePresentation struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	ConferenceName string `json:"conferenceName"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	Role           string `json:"role"`
}

// BookPublishing is one entry in the books collection.
type BookPublishing struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	ISBN      string `json:"isbn"`
}

// ProgrammeOrganised is one entry in the organised programmes collection.
type ProgrammeOrganised struct {
	ID            int64  `json:"id"`
	ProgrammeName string `json:"programmeName"`
	Organisation  string `json:"organisation"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Role          string `json:"role"`
}

// Document is the complete CV value: personal details, a free-text summary
// and seven ordered collections. Insertion order is display and export
// order. Absence is always represented by an empty string or empty slice,
// never by a missing field.
type Document struct {
	PersonalDetails         PersonalDetails          `json:"personalDetails"`
	Summary                 string                   `json:"summary"`
	WorkExperience          []WorkExperience         `json:"workExperience"`
	Education               []Education              `json:"education"`
	Skills                  []Skill                  `json:"skills"`
	AcademicWritings        []AcademicWriting        `json:"academicWritings"`
	ConferencePresentations []ConferencePresentation `json:"conferencePresentations"`
	BookPublishings         []BookPublishing         `json:"bookPublishings"`
	ProgrammesOrganised     []ProgrammeOrganised     `json:"programmesOrganised"`
}

// Collection names, matching the document's JSON keys.
const (
	CollectionWorkExperience          = "workExperience"
	CollectionEducation               = "education"
	CollectionSkills                  = "skills"
	CollectionAcademicWritings        = "academicWritings"
	CollectionConferencePresentations = "conferencePresentations"
	CollectionBookPublishings         = "bookPublishings"
	CollectionProgrammesOrganised     = "programmesOrganised"
)

// CollectionNames returns the seven collection names in display order.
func CollectionNames() []string {
	return []string{
		CollectionWorkExperience,
		CollectionEducation,
		CollectionSkills,
		CollectionAcademicWritings,
		CollectionConferencePresentations,
		CollectionBookPublishings,
		CollectionProgrammesOrganised,
	}
}

// Clone returns a deep copy of the document. All item fields are value
// types, so copying the backing slices is sufficient.
func (d Document) Clone() Document {
	out := d
	out.WorkExperience = cloneItems(d.WorkExperience)
	out.Education = cloneItems(d.Education)
	out.Skills = cloneItems(d.Skills)
	out.AcademicWritings = cloneItems(d.AcademicWritings)
	out.ConferencePresentations = cloneItems(d.ConferencePresentations)
	out.BookPublishings = cloneItems(d.BookPublishings)
	out.ProgrammesOrganised = cloneItems(d.ProgrammesOrganised)
	return out
}

// ItemIDs returns the identifiers of the named collection in order.
// Unknown collection names yield an UnknownCollectionError.
func (d Document) ItemIDs(collection string) ([]int64, error) {
	switch collection {
	case CollectionWorkExperience:
		return itemIDs(d.WorkExperience), nil
	case CollectionEducation:
		return itemIDs(d.Education), nil
	case CollectionSkills:
		return itemIDs(d.Skills), nil
	case CollectionAcademicWritings:
		return itemIDs(d.AcademicWritings), nil
	case CollectionConferencePresentations:
		return itemIDs(d.ConferencePresentations), nil
	case CollectionBookPublishings:
		return itemIDs(d.BookPublishings), nil
	case CollectionProgrammesOrganised:
		return itemIDs(d.ProgrammesOrganised), nil
	default:
		return nil, &UnknownCollectionError{Name: collection}
	}
}

// MaxItemID returns the largest identifier used anywhere in the document,
// or zero for a document with no items. Used to seed the id source so
// freshly minted identifiers are never reused.
func (d Document) MaxItemID() int64 {
	var max int64
	for _, name := range CollectionNames() {
		ids, _ := d.ItemIDs(name)
		for _, id := range ids {
			if id > max {
				max = id
			}
		}
	}
	return max
}
