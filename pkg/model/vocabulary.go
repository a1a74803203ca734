package model

// Course vocabulary for the single-select course dropdown.
const (
	CourseComputerScience        = "BS Computer Science"
	CourseInformationTechnology  = "BS Information Technology"
	CourseComputerEngineering    = "BS Computer Engineering"
	CourseElectronicsEngineering = "BS Electronics Engineering"
	CourseBusinessAdministration = "BS Business Administration"
	CourseAccountancy            = "BS Accountancy"
	CourseNursing                = "BS Nursing"
	CourseEducation              = "BS Education"
	CourseOther                  = "Other"
)

// Event type vocabulary for the chip multi-select.
const (
	EventAcademic         = "Academic"
	EventSports           = "Sports"
	EventCultural         = "Cultural"
	EventTechTalk         = "Tech Talk"
	EventLeadership       = "Leadership"
	EventCommunityService = "Community Service"
	EventArts             = "Arts"
)

var courses = []string{
	CourseComputerScience,
	CourseInformationTechnology,
	CourseComputerEngineering,
	CourseElectronicsEngineering,
	CourseBusinessAdministration,
	CourseAccountancy,
	CourseNursing,
	CourseEducation,
	CourseOther,
}

var eventTypes = []string{
	EventAcademic,
	EventSports,
	EventCultural,
	EventTechTalk,
	EventLeadership,
	EventCommunityService,
	EventArts,
}

// Courses returns the selectable courses in display order.
func Courses() []string {
	return append([]string(nil), courses...)
}

// EventTypes returns the chip vocabulary in display order.
func EventTypes() []string {
	return append([]string(nil), eventTypes...)
}

// IsCourse reports whether name is part of the course list.
func IsCourse(name string) bool {
	return indexOf(courses, name) >= 0
}

// IsEventType reports whether tag is part of the chip vocabulary.
func IsEventType(tag string) bool {
	return indexOf(eventTypes, tag) >= 0
}

// EventTypeIndex returns the vocabulary position of tag, or -1.
func EventTypeIndex(tag string) int {
	return indexOf(eventTypes, tag)
}

func indexOf(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}
