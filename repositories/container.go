package repositories

// OrderUpdate is one child of a bulk reorder, applied atomically with its
// siblings.
type OrderUpdate struct {
	ID    string
	Order int
}

type Repos struct {
	User       UserRepo
	Form       FormRepo
	Section    SectionRepo
	Field      FieldRepo
	Submission SubmissionRepo
	Team       TeamRepo
	Event      EventRepo
	Gallery    GalleryRepo
	Contact    ContactRepo
}

func New() *Repos {
	return &Repos{
		User:       &DBUserRepo{},
		Form:       &DBFormRepo{},
		Section:    &DBSectionRepo{},
		Field:      &DBFieldRepo{},
		Submission: &DBSubmissionRepo{},
		Team:       &DBTeamRepo{},
		Event:      &DBEventRepo{},
		Gallery:    &DBGalleryRepo{},
		Contact:    &DBContactRepo{},
	}
}
