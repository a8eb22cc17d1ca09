package classifier

// Category is the top-level intent bucket of a request.
type Category string

const (
	CategoryInformational Category = "informational"
	CategoryExternalData  Category = "external_data"
	CategoryCreative      Category = "creative"
)

// Subcategory refines CategoryCreative. It is empty for every other category.
type Subcategory string

const (
	SubcategoryNone     Subcategory = ""
	SubcategoryText     Subcategory = "text"
	SubcategoryDocument Subcategory = "document"
	SubcategoryImage    Subcategory = "image"
)

// Action is the stable identifier of the handler bound to a classification.
type Action string

const (
	ActionFetchData        Action = "fetch_data_from_api"
	ActionGenerateText     Action = "generate_text"
	ActionGenerateDocument Action = "generate_document"
	ActionGenerateImage    Action = "generate_image"
	ActionRespondDirect    Action = "respond_direct"
)

// Classification is the immutable result of Classify.
type Classification struct {
	Category    Category
	Subcategory Subcategory
}

type key struct {
	category    Category
	subcategory Subcategory
}

var actions = map[key]Action{
	{CategoryExternalData, SubcategoryNone}:  ActionFetchData,
	{CategoryCreative, SubcategoryText}:      ActionGenerateText,
	{CategoryCreative, SubcategoryDocument}:  ActionGenerateDocument,
	{CategoryCreative, SubcategoryImage}:     ActionGenerateImage,
	{CategoryInformational, SubcategoryNone}: ActionRespondDirect,
}

// Action returns the action bound to c. ok is false for pairs outside the
// action table, e.g. a creative classification without a subcategory.
func (c Classification) Action() (a Action, ok bool) {
	a, ok = actions[key{c.Category, c.Subcategory}]
	return a, ok
}

// Actions lists every action identifier in table order.
func Actions() []Action {
	return []Action{
		ActionFetchData,
		ActionGenerateText,
		ActionGenerateDocument,
		ActionGenerateImage,
		ActionRespondDirect,
	}
}
