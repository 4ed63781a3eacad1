package form

// Option lists validated against the training dataset. The preprocessor's one-hot encoder knows
// exactly these categories.
var (
    IndustryOptions = []string{
        "Education", "Entertainment", "Finance", "Healthcare",
        "IT", "Manufacturing", "Retail", "Transportation",
    }
    JobStatusOptions = []string{"Decreasing", "Increasing"}
    EducationOptions = []string{
        "Associate Degree", "Bachelor’s Degree", "High School", "Master’s Degree", "PhD",
    }
    LocationOptions = []string{
        "Australia", "Brazil", "Canada", "China", "Germany", "India", "UK", "USA",
    }
)

// OptionTables is keyed by the name used in the `formoption` validation tag.
var OptionTables = map[string][]string{
    "industry":  IndustryOptions,
    "jobstatus": JobStatusOptions,
    "education": EducationOptions,
    "location":  LocationOptions,
}

func IsOption(table, v string) bool {
    for _, o := range OptionTables[table] {
        if o == v { return true }
    }
    return false
}
