package features

func testTransformer() *ColumnTransformer {
    return &ColumnTransformer{Transformers: []Transformer{
        {
            Name:    "num",
            Kind:    KindNumeric,
            Columns: []string{"Salary", "Experience"},
            Scaler:  &Scaler{Mean: []float64{50000, 5}, Scale: []float64{10000, 0}},
        },
        {
            Name:    "cat",
            Kind:    KindCategorical,
            Columns: []string{"Industry", "Location"},
            OneHot: &OneHot{
                Categories:    [][]string{{"Finance", "IT"}, {"Brazil", "UK", "USA"}},
                HandleUnknown: UnknownIgnore,
            },
        },
    }}
}

func testRecord(industry string) Record {
    r, err := NewRecord(
        []string{"Salary", "Experience"}, []string{"Industry", "Location"},
        []float64{60000, 7}, []string{industry, "UK"},
    )
    if err != nil { panic(err) }
    return r
}
