package resource

func meta(fields ...Field) []Field {
	return append([]Field{
		{API: "id", Column: "id", Kind: KindString, ReadOnly: true},
		{API: "createdAt", Column: "created_at", Kind: KindTime, ReadOnly: true},
		{API: "updatedAt", Column: "updated_at", Kind: KindTime, ReadOnly: true},
	}, fields...)
}

var orderField = Field{API: "order", Column: OrderColumn, Kind: KindInt}

var Skills = (&Descriptor{
	Name:  "skills",
	Label: "Skill",
	Table: "skills",
	Fields: meta(
		Field{API: "name", Column: "name"},
		Field{API: "category", Column: "category"},
		Field{API: "proficiency", Column: "proficiency"},
		Field{API: "icon", Column: "icon"},
		orderField,
	),
	Required:  []string{"name", "category"},
	Ordered:   true,
	OrderBase: 0,
	Sorts:     []Sort{{Column: "name"}},
}).Build()

var SocialLinks = (&Descriptor{
	Name:  "social-links",
	Label: "Social link",
	Table: "social_links",
	Fields: meta(
		Field{API: "name", Column: "name"},
		Field{API: "icon", Column: "icon"},
		Field{API: "url", Column: "url"},
		orderField,
	),
	Required:  []string{"name", "icon", "url"},
	Ordered:   true,
	OrderBase: 0,
}).Build()

var Experiences = (&Descriptor{
	Name:  "experience",
	Label: "Experience",
	Table: "experiences",
	Fields: meta(
		Field{API: "position", Column: "position"},
		Field{API: "company", Column: "company"},
		Field{API: "employmentType", Column: "employment_type"},
		Field{API: "location", Column: "location"},
		Field{API: "startDate", Column: "start_date"},
		Field{API: "endDate", Column: "end_date"},
		Field{API: "isCurrentRole", Column: "is_current_role", Kind: KindBool},
		Field{API: "logo", Column: "logo"},
		Field{API: "description", Column: "description", Kind: KindText},
		Field{API: "responsibilities", Column: "responsibilities", Kind: KindStrings},
		Field{API: "achievements", Column: "achievements", Kind: KindStrings},
		Field{API: "skills", Column: "skills", Kind: KindStrings},
		orderField,
	),
	Required:  []string{"position", "company", "startDate"},
	Ordered:   true,
	OrderBase: 1,
	Sorts:     []Sort{{Column: "start_date", Desc: true}},
	Defaults:  map[string]any{"employment_type": "Full-time"},
}).Build()

var Educations = (&Descriptor{
	Name:  "education",
	Label: "Education",
	Table: "educations",
	Fields: meta(
		Field{API: "school", Column: "school"},
		Field{API: "degree", Column: "degree"},
		Field{API: "field", Column: "field"},
		Field{API: "startDate", Column: "start_date"},
		Field{API: "endDate", Column: "end_date"},
		Field{API: "isCurrentlyEnrolled", Column: "is_currently_enrolled", Kind: KindBool},
		Field{API: "logo", Column: "logo"},
		Field{API: "description", Column: "description", Kind: KindText},
		Field{API: "courses", Column: "courses", Kind: KindStrings},
		Field{API: "achievements", Column: "achievements", Kind: KindStrings},
		Field{API: "gpa", Column: "gpa"},
		orderField,
	),
	Required:  []string{"school", "degree", "field", "startDate"},
	Ordered:   true,
	OrderBase: 1,
	Sorts:     []Sort{{Column: "start_date", Desc: true}},
}).Build()

var Certifications = (&Descriptor{
	Name:  "certification",
	Label: "Certification",
	Table: "certifications",
	Fields: meta(
		Field{API: "name", Column: "name"},
		Field{API: "issuer", Column: "issuer"},
		Field{API: "issueDate", Column: "issue_date"},
		Field{API: "expiryDate", Column: "expiry_date"},
		Field{API: "credentialId", Column: "credential_id"},
		Field{API: "credentialUrl", Column: "credential_url"},
		Field{API: "logo", Column: "logo"},
		Field{API: "description", Column: "description", Kind: KindText},
		Field{API: "skills", Column: "skills", Kind: KindStrings},
		Field{API: "validationDetails", Column: "validation_details", Kind: KindText},
		orderField,
	),
	Required:  []string{"name", "issuer", "issueDate", "description", "skills"},
	Ordered:   true,
	OrderBase: 1,
	Sorts:     []Sort{{Column: "issue_date", Desc: true}},
}).Build()

var Projects = (&Descriptor{
	Name:  "projects",
	Label: "Project",
	Table: "projects",
	Fields: meta(
		Field{API: "name", Column: "name"},
		Field{API: "description", Column: "description", Kind: KindText},
		Field{API: "longDescription", Column: "long_description", Kind: KindText},
		Field{API: "thumbnail", Column: "thumbnail"},
		Field{API: "images", Column: "images", Kind: KindStrings},
		Field{API: "technologies", Column: "technologies", Kind: KindStrings},
		Field{API: "githubUrl", Column: "github_url"},
		Field{API: "liveUrl", Column: "live_url"},
		Field{API: "features", Column: "features", Kind: KindStrings},
		Field{API: "status", Column: "status"},
		Field{API: "startDate", Column: "start_date"},
		Field{API: "endDate", Column: "end_date"},
		Field{API: "isFeatured", Column: "is_featured", Kind: KindBool},
		orderField,
	),
	Required:  []string{"name", "description", "thumbnail", "technologies"},
	Ordered:   true,
	OrderBase: 1,
	Sorts:     []Sort{{Column: "created_at", Desc: true}},
}).Build()

// PersonalInfo - единственная строка portfolio_config, без порядка
var PersonalInfo = (&Descriptor{
	Name:  "personal-info",
	Label: "Personal info",
	Table: "portfolio_config",
	Fields: meta(
		Field{API: "profilePicture", Column: "profile_picture"},
		Field{API: "greeting", Column: "greeting"},
		Field{API: "position", Column: "position"},
		Field{API: "aboutMe", Column: "about_me", Kind: KindText},
	),
	Required: []string{"greeting", "position", "aboutMe"},
}).Build()

// Collections - все упорядоченные коллекции в порядке регистрации маршрутов
func Collections() []*Descriptor {
	return []*Descriptor{Skills, SocialLinks, Experiences, Educations, Certifications, Projects}
}
