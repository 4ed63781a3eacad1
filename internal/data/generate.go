package data

import (
    "math"
    "math/rand"

    "aiimpact/internal/form"
)

// SampleProfiles draws n profiles within the widget bounds and the option tables. They are used
// to smoke-test a freshly exported artifact set, never for training.
func SampleProfiles(n int, rng *rand.Rand) []form.Profile {
    out := make([]form.Profile, 0, n)
    for i := 0; i < n; i++ {
        p := form.Profile{
            MedianSalary:          float64(30000 + 1000*rng.Intn(150)),
            ExperienceYears:       float64(rng.Intn(21)),
            JobOpenings2024:       float64(rng.Intn(10000)),
            ProjectedOpenings2030: float64(rng.Intn(10000)),
            RemoteRatio:           percent(rng),
            GenderDiversity:       percent(rng),
            AutomationRisk:        percent(rng),
            Industry:              pick(rng, form.IndustryOptions),
            JobStatus:             pick(rng, form.JobStatusOptions),
            Education:             pick(rng, form.EducationOptions),
            Location:              pick(rng, form.LocationOptions),
        }
        out = append(out, p)
    }
    return out
}

// percent is a slider value on the 0.1 grid.
func percent(rng *rand.Rand) float64 {
    return math.Round(rng.Float64()*1000) / 10
}

func pick(rng *rand.Rand, opts []string) string { return opts[rng.Intn(len(opts))] }
