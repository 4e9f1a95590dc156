package ast

import (
	"strconv"
	"strings"
)

// Text returns the source text of the whitespace run.
func (w Whitespace) Text() string { return w.Value }

// Text returns the source text of the comment, including the leading '#'.
func (c Comment) Text() string { return "#" + c.Value }

// Text returns the source text of the line terminator.
func (lt LineTerminator) Text() string {
	var sb strings.Builder
	sb.WriteString(lt.Space0.Text())
	if lt.Comment != nil {
		sb.WriteString(lt.Comment.Text())
	}
	sb.WriteString(lt.Newline.Text())
	return sb.String()
}

// Text returns the source text of the filename.
func (f Filename) Text() string { return f.Value }

// Text returns the source text of the float literal.
func (f Float) Text() string { return f.Encoded }

// Text returns the source text of the template, including its delimiters.
func (t Template) Text() string {
	var sb strings.Builder
	if t.Delimiter != 0 {
		sb.WriteRune(t.Delimiter)
	}
	for _, e := range t.Elements {
		switch e := e.(type) {
		case TemplateString:
			sb.WriteString(e.Encoded)
		case TemplatePlaceholder:
			sb.WriteString(e.Text())
		}
	}
	if t.Delimiter != 0 {
		sb.WriteRune(t.Delimiter)
	}
	return sb.String()
}

// Text returns the source text of the placeholder.
func (p TemplatePlaceholder) Text() string {
	return "{{" + p.Space0.Text() + p.Variable.Name + p.Space1.Text() + "}}"
}

// Text returns the source text of the variable definition.
func (v VariableDefinition) Text() string {
	return v.Name + v.Space0.Text() + "=" + v.Space1.Text() + variableValueText(v.Value)
}

func variableValueText(v VariableValue) string {
	switch v := v.(type) {
	case VariableNull:
		return "null"
	case VariableBool:
		return strconv.FormatBool(v.Value)
	case VariableFloat:
		return v.Value.Text()
	case VariableInteger:
		return strconv.FormatInt(v.Value, 10)
	case VariableString:
		return v.Value.Text()
	}
	return ""
}

// Text returns the source text of the retry sentinel.
func retryText(r Retry) string {
	switch r := r.(type) {
	case RetryInfinite:
		return "-1"
	case RetryNone:
		return "0"
	case RetryFinite:
		return strconv.FormatUint(r.Count, 10)
	}
	return ""
}

func optionValueText(kind OptionKind) string {
	switch k := kind.(type) {
	case AwsSigV4:
		return k.Value
	case CaCertificate:
		return k.Value.Text()
	case ClientCert:
		return k.Value.Text()
	case ClientKey:
		return k.Value.Text()
	case Compressed:
		return strconv.FormatBool(k.Value)
	case ConnectTo:
		return k.Value
	case Delay:
		return strconv.FormatUint(k.Value, 10)
	case FollowLocation:
		return strconv.FormatBool(k.Value)
	case Http10:
		return strconv.FormatBool(k.Value)
	case Http11:
		return strconv.FormatBool(k.Value)
	case Http2:
		return strconv.FormatBool(k.Value)
	case Http3:
		return strconv.FormatBool(k.Value)
	case Insecure:
		return strconv.FormatBool(k.Value)
	case IpV4:
		return strconv.FormatBool(k.Value)
	case IpV6:
		return strconv.FormatBool(k.Value)
	case MaxRedirect:
		return strconv.Itoa(k.Value)
	case PathAsIs:
		return strconv.FormatBool(k.Value)
	case Proxy:
		return k.Value
	case Resolve:
		return k.Value
	case RetryOption:
		return retryText(k.Value)
	case RetryInterval:
		return strconv.FormatUint(k.Value, 10)
	case VariableOption:
		return k.Value.Text()
	case Verbose:
		return strconv.FormatBool(k.Value)
	case VeryVerbose:
		return strconv.FormatBool(k.Value)
	}
	return ""
}

// Text returns the source text of the whole clause: leading trivia, keyword,
// colon, value and trailing line terminator, in parse order.
func (o EntryOption) Text() string {
	var sb strings.Builder
	for _, lt := range o.LineTerminators {
		sb.WriteString(lt.Text())
	}
	sb.WriteString(o.Space0.Text())
	sb.WriteString(o.Name)
	sb.WriteString(o.Space1.Text())
	sb.WriteString(":")
	sb.WriteString(o.Space2.Text())
	sb.WriteString(optionValueText(o.Kind))
	sb.WriteString(o.LineTerminator0.Text())
	return sb.String()
}

// Text returns the source text of the whole section, including the trivia
// after the last clause.
func (s OptionsSection) Text() string {
	var sb strings.Builder
	for _, o := range s.Options {
		sb.WriteString(o.Text())
	}
	for _, lt := range s.LineTerminators {
		sb.WriteString(lt.Text())
	}
	sb.WriteString(s.Space0.Text())
	return sb.String()
}
