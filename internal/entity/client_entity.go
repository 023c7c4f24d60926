package entity

import "sort"

// Client is the typed view of User/Clientes/{id}.
type Client struct {
	Id       string
	Name     string
	LastName string
	Email    string
	Phone    string
	Image    string
	Raw      map[string]interface{}
}

func ParseClient(id string, raw interface{}) *Client {
	m := AsMap(raw)
	if m == nil {
		return nil
	}
	return &Client{
		Id:       id,
		Name:     stringField(m, "name"),
		LastName: stringField(m, "lastName"),
		Email:    stringField(m, "email"),
		Phone:    stringField(m, "phone"),
		Image:    stringField(m, "image"),
		Raw:      m,
	}
}

func ParseClients(raw interface{}) []*Client {
	m := AsMap(raw)
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Client, 0, len(ids))
	for _, id := range ids {
		if c := ParseClient(id, m[id]); c != nil {
			out = append(out, c)
		}
	}
	return out
}
