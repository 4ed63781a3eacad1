package form

import (
    "errors"
    "math"
    "reflect"
    "strings"

    "github.com/go-playground/locales/en"
    "github.com/go-playground/locales/pt_BR"
    ut "github.com/go-playground/universal-translator"
    "github.com/go-playground/validator/v10"
    ptbr "github.com/go-playground/validator/v10/translations/pt_BR"
)

// RegisterValidations installs the formoption rule and reports fields by their form key.
func RegisterValidations(v *validator.Validate) error {
    v.RegisterTagNameFunc(func(fld reflect.StructField) string {
        name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
        if name == "-" { return "" }
        return name
    })
    if err := v.RegisterValidation("formoption", func(fl validator.FieldLevel) bool {
        return IsOption(fl.Param(), fl.Field().String())
    }); err != nil {
        return err
    }
    // number widgets take whole values only
    return v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
        x := fl.Field().Float()
        return x == math.Trunc(x)
    })
}

// NewTranslator returns a pt_BR translator with the default messages plus formoption.
func NewTranslator(v *validator.Validate) (ut.Translator, error) {
    uni := ut.New(en.New(), pt_BR.New())
    trans, _ := uni.GetTranslator("pt_BR")
    if err := ptbr.RegisterDefaultTranslations(v, trans); err != nil {
        return nil, err
    }
    err := v.RegisterTranslation("formoption", trans,
        func(t ut.Translator) error {
            return t.Add("formoption", "{0} deve ser uma das opções disponíveis", true)
        },
        func(t ut.Translator, fe validator.FieldError) string {
            msg, _ := t.T("formoption", fe.Field())
            return msg
        },
    )
    if err != nil { return nil, err }
    err = v.RegisterTranslation("whole", trans,
        func(t ut.Translator) error {
            return t.Add("whole", "{0} deve ser um número inteiro", true)
        },
        func(t ut.Translator, fe validator.FieldError) string {
            msg, _ := t.T("whole", fe.Field())
            return msg
        },
    )
    if err != nil { return nil, err }
    return trans, nil
}

// Errors maps widget keys to translated messages, naming fields by their feature label.
// It returns nil when err is not a validation error.
func (f *Form) Errors(err error, trans ut.Translator) map[string]string {
    var verrs validator.ValidationErrors
    if !errors.As(err, &verrs) { return nil }
    out := make(map[string]string, len(verrs))
    for _, fe := range verrs {
        key := fe.Field()
        msg := fe.Error()
        if trans != nil { msg = fe.Translate(trans) }
        if label := f.Label(key); label != "" {
            msg = strings.Replace(msg, key, label, 1)
        }
        out[key] = msg
    }
    return out
}

func (f *Form) Label(key string) string {
    for _, fl := range f.Numeric {
        if fl.Key == key { return fl.Label }
    }
    for _, fl := range f.Categorical {
        if fl.Key == key { return fl.Label }
    }
    return ""
}
