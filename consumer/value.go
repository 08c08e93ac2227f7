package consumer

import "github.com/contract-kit/pactcore"

// ToValue renders one Interaction into the {providerStates?, description,
// request, response} record shape spec.md §6 assigns pact documents.
func (i Interaction) ToValue() pactcore.Value {
	obj := map[string]pactcore.Value{
		"description": pactcore.String(i.Description),
		"request":     requestValue(i.Request),
		"response":    responseValue(i.Response),
	}
	if len(i.ProviderStates) > 0 {
		states := make([]pactcore.Value, len(i.ProviderStates))
		for idx, ps := range i.ProviderStates {
			stateObj := map[string]pactcore.Value{"name": pactcore.String(ps.Name)}
			if len(ps.Params) > 0 {
				stateObj["params"] = pactcore.FromAny(ps.Params)
			}
			states[idx] = pactcore.Object(stateObj)
		}
		obj["providerStates"] = pactcore.Array(states)
	}
	return pactcore.Object(obj)
}

func requestValue(r Request) pactcore.Value {
	obj := map[string]pactcore.Value{
		"method": pactcore.String(r.Method),
		"path":   pactcore.String(r.Path),
	}
	if r.Query != "" {
		obj["query"] = pactcore.String(r.Query)
	}
	if len(r.Headers) > 0 {
		obj["headers"] = headersValue(r.Headers)
	}
	if r.Body != nil {
		obj["body"] = pactcore.FromAny(r.Body)
	}
	if len(r.matchingRules) > 0 {
		obj["matchingRules"] = matchingRulesValue(r.matchingRules)
	}
	return pactcore.Object(obj)
}

func responseValue(r Response) pactcore.Value {
	obj := map[string]pactcore.Value{
		"status": pactcore.Number(float64(r.Status)),
	}
	if len(r.Headers) > 0 {
		obj["headers"] = headersValue(r.Headers)
	}
	if r.Body != nil {
		obj["body"] = pactcore.FromAny(r.Body)
	}
	if len(r.matchingRules) > 0 {
		obj["matchingRules"] = matchingRulesValue(r.matchingRules)
	}
	return pactcore.Object(obj)
}

func headersValue(h map[string]string) pactcore.Value {
	obj := make(map[string]pactcore.Value, len(h))
	for k, v := range h {
		obj[k] = pactcore.String(v)
	}
	return pactcore.Object(obj)
}

func matchingRulesValue(rules map[string]pactcore.RuleDescriptor) pactcore.Value {
	obj := make(map[string]pactcore.Value, len(rules))
	for selector, d := range rules {
		ruleObj := map[string]pactcore.Value{}
		if d.Match != "" {
			ruleObj["match"] = pactcore.String(d.Match)
		}
		if d.Regex != "" {
			ruleObj["regex"] = pactcore.String(d.Regex)
		}
		if d.Min != nil {
			ruleObj["min"] = pactcore.Number(float64(*d.Min))
		}
		if d.Max != nil {
			ruleObj["max"] = pactcore.Number(float64(*d.Max))
		}
		obj[selector] = pactcore.Object(ruleObj)
	}
	return pactcore.Object(obj)
}
