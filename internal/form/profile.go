package form

import (
    "aiimpact/internal/features"
)

// Profile is what the form posts. Field order matches NumericWidgets and CategoricalWidgets.
type Profile struct {
    MedianSalary          float64 `form:"salary_input" json:"salary_input" binding:"gte=0,whole"`
    ExperienceYears       float64 `form:"experience_input" json:"experience_input" binding:"gte=0,whole"`
    JobOpenings2024       float64 `form:"openings24_input" json:"openings24_input" binding:"gte=0,whole"`
    ProjectedOpenings2030 float64 `form:"openings30_input" json:"openings30_input" binding:"gte=0,whole"`
    RemoteRatio           float64 `form:"remote_input" json:"remote_input" binding:"gte=0,lte=100"`
    GenderDiversity       float64 `form:"gender_input" json:"gender_input" binding:"gte=0,lte=100"`
    AutomationRisk        float64 `form:"risk_input" json:"risk_input" binding:"gte=0,lte=100"`

    Industry  string `form:"industry_input" json:"industry_input" binding:"required,formoption=industry"`
    JobStatus string `form:"status_input" json:"status_input" binding:"required,formoption=jobstatus"`
    Education string `form:"education_input" json:"education_input" binding:"required,formoption=education"`
    Location  string `form:"location_input" json:"location_input" binding:"required,formoption=location"`
}

// DefaultProfile is the form as first rendered.
func DefaultProfile() Profile {
    return Profile{
        MedianSalary:          NumericWidgets[0].Default,
        ExperienceYears:       NumericWidgets[1].Default,
        JobOpenings2024:       NumericWidgets[2].Default,
        ProjectedOpenings2030: NumericWidgets[3].Default,
        RemoteRatio:           NumericWidgets[4].Default,
        GenderDiversity:       NumericWidgets[5].Default,
        AutomationRisk:        NumericWidgets[6].Default,
        Industry:              IndustryOptions[0],
        JobStatus:             JobStatusOptions[0],
        Education:             EducationOptions[0],
        Location:              LocationOptions[0],
    }
}

func (p Profile) Numbers() []float64 {
    return []float64{
        p.MedianSalary, p.ExperienceYears, p.JobOpenings2024, p.ProjectedOpenings2030,
        p.RemoteRatio, p.GenderDiversity, p.AutomationRisk,
    }
}

func (p Profile) Categories() []string {
    return []string{p.Industry, p.JobStatus, p.Education, p.Location}
}

// Value returns the posted value for a widget key, formatted for redisplay.
func (p Profile) Value(key string) any {
    for i, w := range NumericWidgets {
        if w.Key == key { return p.Numbers()[i] }
    }
    for i, w := range CategoricalWidgets {
        if w.Key == key { return p.Categories()[i] }
    }
    return nil
}

// Record assembles the single-row request keyed by the preprocessor's feature names.
func (p Profile) Record(f *Form) (features.Record, error) {
    return features.NewRecord(f.NumericNames(), f.CategoricalNames(), p.Numbers(), p.Categories())
}
