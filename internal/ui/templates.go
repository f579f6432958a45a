package ui

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006 15:04")
	},
	"ago": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"money": func(f float64) string {
		return "$" + humanize.FormatFloat("#,###.##", f)
	},
	"plural": func(n int, singular string) string {
		return english.PluralWord(n, singular, "")
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"join": strings.Join,
	"fieldError": func(errs any, key string) string {
		m, _ := errs.(map[string]string)
		return m[key]
	},
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			k, ok := pairs[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
			}
			m[k] = pairs[i+1]
		}
		return m, nil
	},
	"statusColor": func(status any) string {
		switch strings.ToLower(fmt.Sprint(status)) {
		case "paid", "survived", "true":
			return "bg-green-100 text-green-800"
		case "refunded":
			return "bg-yellow-100 text-yellow-800"
		case "failed", "false":
			return "bg-red-100 text-red-800"
		}
		return "bg-gray-100 text-gray-800"
	},
	"roleBadge": func(role any) string {
		switch strings.ToLower(fmt.Sprint(role)) {
		case "admin":
			return "bg-purple-100 text-purple-800"
		case "employee":
			return "bg-blue-100 text-blue-800"
		case "tester":
			return "bg-pink-100 text-pink-800"
		}
		return "bg-gray-100 text-gray-800"
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	_, err = tmpl.New("content").Parse(content)
	if err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			_, err = tmpl.New(filepath.Base(compName)).Parse(compContent)
			if err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Identity}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-pink-600">GlamGiant</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        {{range .Nav}}
                        <a href="{{.Path}}" class="{{if eq .Path $.Path}}border-pink-500 text-gray-900{{else}}border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700{{end}} inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{.Title}}</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-2">{{.Identity.DisplayName}}</span>
                    <span class="mr-4 inline-flex items-center px-2 py-0.5 rounded text-xs font-medium {{roleBadge .Identity.Role}}">{{.Identity.Role}}</span>
                    <form action="/logout" method="POST"><button type="submit" class="text-sm text-gray-500 hover:text-gray-700">Logout</button></form>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "flash" .}}
        {{template "content" .}}
    </main>
</body>
</html>`,

	"components/flash": `{{define "flash"}}
{{if .Flash}}
<div class="mb-4 rounded-md bg-green-50 p-4"><div class="text-sm text-green-700">{{.Flash}}</div></div>
{{end}}
{{if .Error}}
<div class="mb-4 rounded-md bg-red-50 p-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
{{end}}
{{end}}`,

	"components/search": `{{define "search"}}
<form method="GET" action="{{.Path}}" class="mb-4 flex gap-2">
    <input type="text" name="q" value="{{.Search}}" placeholder="Search..."
           class="block w-64 rounded-md border-gray-300 shadow-sm focus:border-pink-500 focus:ring-pink-500 sm:text-sm px-3 py-2 border">
    <input type="hidden" name="pq" value="{{.Search}}">
    {{if .SortKey}}
    <input type="hidden" name="sort" value="{{.SortKey}}">
    <input type="hidden" name="dir" value="{{.Direction}}">
    {{end}}
    <button type="submit" class="px-3 py-2 text-sm rounded-md bg-pink-600 text-white hover:bg-pink-700">Search</button>
</form>
{{end}}`,

	"components/sort_header": `{{define "sort_header"}}
<th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">
    <a href="{{.T.SortURL .Key}}" class="hover:text-gray-700">{{.Label}} {{.T.Arrow .Key}}</a>
</th>
{{end}}`,

	"components/pager": `{{define "pager"}}
<div class="flex items-center justify-between px-4 py-3 bg-white border-t text-sm text-gray-700">
    <span>{{comma .Total}} {{plural .Total "record"}}, page {{.Page}} of {{.TotalPages}}</span>
    <div class="flex gap-1">
        {{if .HasPrev}}<a href="{{.PageURL (sub .Page 1)}}" class="px-3 py-1 rounded border hover:bg-gray-50">Previous</a>{{end}}
        {{$t := .}}
        {{range seq .TotalPages}}
        <a href="{{$t.PageURL .}}" class="px-3 py-1 rounded border {{if eq . $t.Page}}bg-pink-600 text-white{{else}}hover:bg-gray-50{{end}}">{{.}}</a>
        {{end}}
        {{if .HasNext}}<a href="{{.PageURL (add .Page 1)}}" class="px-3 py-1 rounded border hover:bg-gray-50">Next</a>{{end}}
    </div>
</div>
{{end}}`,

	"components/field": `{{define "field"}}
<div>
    <label for="{{.Name}}" class="block text-sm font-medium text-gray-700">{{.Label}}</label>
    <input id="{{.Name}}" name="{{.Name}}" type="{{or .Type "text"}}" value="{{.Value}}" {{if .Step}}step="{{.Step}}"{{end}}
           class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 shadow-sm focus:border-pink-500 focus:ring-pink-500 sm:text-sm">
    {{with fieldError .Errors .Name}}<p class="mt-1 text-sm text-red-600">{{$.Label}} {{.}}</p>{{end}}
</div>
{{end}}`,

	"login": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">GlamGiant</h2>
            <p class="mt-2 text-center text-sm text-gray-600">Sign in to your account</p>
        </div>
        <form class="mt-8 space-y-6" action="/login" method="POST">
            {{template "field" dict "Name" "email" "Label" "Email" "Type" "email" "Value" .Form.Email "Errors" .Errors}}
            {{template "field" dict "Name" "password" "Label" "Password" "Type" "password" "Value" "" "Errors" .Errors}}
            <button type="submit" class="w-full flex justify-center py-2 px-4 rounded-md text-sm font-medium text-white bg-pink-600 hover:bg-pink-700">Sign in</button>
        </form>
        <p class="text-center text-sm text-gray-600">No account? <a href="/register" class="text-pink-600 hover:text-pink-500">Register</a></p>
    </div>
</div>
{{end}}`,

	"register": `{{define "content"}}
<div class="flex items-center justify-center py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">Create an account</h2>
        <form class="mt-8 space-y-4" action="/register" method="POST">
            {{template "field" dict "Name" "name" "Label" "Name" "Value" .Form.Name "Errors" .Errors}}
            {{template "field" dict "Name" "email" "Label" "Email" "Type" "email" "Value" .Form.Email "Errors" .Errors}}
            {{template "field" dict "Name" "password" "Label" "Password" "Type" "password" "Value" "" "Errors" .Errors}}
            {{template "field" dict "Name" "confirm" "Label" "Confirm password" "Type" "password" "Value" "" "Errors" .Errors}}
            <button type="submit" class="w-full py-2 px-4 rounded-md text-sm font-medium text-white bg-pink-600 hover:bg-pink-700">Register</button>
        </form>
        <p class="text-center text-sm text-gray-600">Already registered? <a href="/login" class="text-pink-600 hover:text-pink-500">Sign in</a></p>
    </div>
</div>
{{end}}`,

	"unauthorized": `{{define "content"}}
<div class="text-center py-16">
    <h1 class="text-4xl font-bold text-gray-900">Access denied</h1>
    <p class="mt-4 text-gray-600">Your role does not have access to that page.</p>
    <div class="mt-6">
        {{if .Home}}<a href="{{.Home}}" class="text-pink-600 hover:text-pink-500">Back to your dashboard</a>
        {{else}}<a href="/login" class="text-pink-600 hover:text-pink-500">Sign in</a>{{end}}
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="text-center py-16">
    <h1 class="text-2xl font-semibold text-gray-900">{{.Message}}</h1>
    {{if .Detail}}<p class="mt-2 text-sm text-gray-500">{{.Detail}}</p>{{end}}
    <a href="/" class="mt-6 inline-block text-pink-600 hover:text-pink-500">Home</a>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Welcome back, {{.Identity.DisplayName}}{{if .Uptime}} (console up {{.Uptime}}){{end}}</p>
    </div>
    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        {{range .Cards}}
        <a href="{{.Link}}" class="bg-white overflow-hidden shadow rounded-lg p-5 hover:shadow-md">
            <dt class="text-sm font-medium text-gray-500 truncate">{{.Label}}</dt>
            {{if .Err}}
            <dd class="mt-1 text-sm text-red-600">{{.Err}}</dd>
            {{else}}
            <dd class="mt-1 text-3xl font-semibold text-gray-900">{{comma .Value}}</dd>
            {{end}}
        </a>
        {{end}}
    </div>
    {{if .LowStock}}
    <div class="bg-white shadow rounded-lg">
        <h2 class="px-6 py-4 text-lg font-medium text-gray-900 border-b">Low stock</h2>
        <ul class="divide-y divide-gray-200">
            {{range .LowStock}}
            <li class="px-6 py-3 flex justify-between text-sm">
                <a href="/edit-product/{{.ID}}" class="text-pink-600 hover:text-pink-500">{{.Name}}</a>
                <span class="text-gray-500">{{.Stock}} left at {{.WarehouseLocation}}</span>
            </li>
            {{end}}
        </ul>
    </div>
    {{end}}
</div>
{{end}}`,

	"products": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Products</h1>
        {{if .CanCreate}}<a href="/create-product" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">New product</a>{{end}}
    </div>
    {{template "search" .Table}}
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50"><tr>
                {{template "sort_header" dict "T" .Table "Key" "name" "Label" "Name"}}
                {{template "sort_header" dict "T" .Table "Key" "category" "Label" "Category"}}
                {{template "sort_header" dict "T" .Table "Key" "stock" "Label" "Stock"}}
                {{template "sort_header" dict "T" .Table "Key" "warehouse_location" "Label" "Warehouse"}}
                {{template "sort_header" dict "T" .Table "Key" "durability_score" "Label" "Durability"}}
                {{template "sort_header" dict "T" .Table "Key" "price" "Label" "Price"}}
                <th class="px-6 py-3"></th>
            </tr></thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Products}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Category}}</td>
                    <td class="px-6 py-4 text-sm {{if .LowStock}}text-red-600 font-semibold{{else}}text-gray-500{{end}}">{{comma .Stock}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.WarehouseLocation}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.DurabilityScore}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{money .Price}}</td>
                    <td class="px-6 py-4 text-sm text-right space-x-2">
                        <a href="/edit-product/{{.ID}}" class="text-pink-600 hover:text-pink-500">Edit</a>
                        {{if $.CanDelete}}
                        <form action="/products/{{.ID}}/delete" method="POST" class="inline"><button type="submit" class="text-red-600 hover:text-red-500">Delete</button></form>
                        {{end}}
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="7" class="px-6 py-8 text-center text-sm text-gray-500">No products found.</td></tr>
                {{end}}
            </tbody>
        </table>
        {{template "pager" .Table}}
    </div>
</div>
{{end}}`,

	"product_form": `{{define "content"}}
<div class="max-w-2xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">{{if .Product}}Edit {{.Product.Name}}{{else}}New product{{end}}</h1>
    <form action="{{.Action}}" method="POST" class="bg-white shadow rounded-lg p-6 space-y-4">
        {{template "field" dict "Name" "name" "Label" "Name" "Value" .Form.Name "Errors" .Errors}}
        {{template "field" dict "Name" "category" "Label" "Category" "Value" .Form.Category "Errors" .Errors}}
        {{template "field" dict "Name" "stock" "Label" "Stock" "Type" "number" "Value" .Form.Stock "Errors" .Errors}}
        {{template "field" dict "Name" "warehouse_location" "Label" "Warehouse location" "Value" .Form.WarehouseLocation "Errors" .Errors}}
        {{template "field" dict "Name" "durability_score" "Label" "Durability score" "Type" "number" "Step" "0.1" "Value" .Form.DurabilityScore "Errors" .Errors}}
        {{template "field" dict "Name" "price" "Label" "Price" "Type" "number" "Step" "0.01" "Value" .Form.Price "Errors" .Errors}}
        <div class="flex justify-end gap-2">
            <a href="/products" class="px-4 py-2 rounded-md text-sm border">Cancel</a>
            <button type="submit" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"product_tests": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Product Tests</h1>
    {{template "search" .Table}}
    <div class="bg-white shadow rounded-lg overflow-hidden mb-8">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50"><tr>
                {{template "sort_header" dict "T" .Table "Key" "product" "Label" "Product"}}
                {{template "sort_header" dict "T" .Table "Key" "tester" "Label" "Tester"}}
                {{template "sort_header" dict "T" .Table "Key" "reaction" "Label" "Reaction"}}
                {{template "sort_header" dict "T" .Table "Key" "rating" "Label" "Rating"}}
                {{template "sort_header" dict "T" .Table "Key" "survival_status" "Label" "Survived"}}
                <th class="px-6 py-3"></th>
            </tr></thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Tests}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.ProductName}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.TesterName}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{truncate .Reaction 60}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Rating}}/10</td>
                    <td class="px-6 py-4 text-sm"><span class="px-2 py-0.5 rounded text-xs {{statusColor .SurvivalStatus}}">{{if .SurvivalStatus}}Yes{{else}}No{{end}}</span></td>
                    <td class="px-6 py-4 text-sm text-right space-x-2">
                        {{if or (not ($.Identity.Is "tester")) (eq .TesterID $.Identity.ID)}}
                        <a href="/product-tests/{{.ID}}/edit" class="text-pink-600 hover:text-pink-500">Edit</a>
                        <form action="/product-tests/{{.ID}}/delete" method="POST" class="inline"><button type="submit" class="text-red-600 hover:text-red-500">Delete</button></form>
                        {{end}}
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No product tests found.</td></tr>
                {{end}}
            </tbody>
        </table>
        {{template "pager" .Table}}
    </div>
    <h2 class="text-lg font-medium text-gray-900 mb-4">Record a test</h2>
    {{template "product_test_fields" dict "Action" "/product-tests" "Form" .Form "Products" .Products "Errors" .Errors}}
</div>
{{end}}`,

	"components/product_test_fields": `{{define "product_test_fields"}}
<form action="{{.Action}}" method="POST" class="bg-white shadow rounded-lg p-6 space-y-4 max-w-2xl">
    <div>
        <label for="product_id" class="block text-sm font-medium text-gray-700">Product</label>
        {{if .Products}}
        <select id="product_id" name="product_id" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 sm:text-sm">
            {{$sel := .Form.ProductID}}
            {{range .Products}}<option value="{{.ID}}" {{if eq .ID $sel}}selected{{end}}>{{.Name}}</option>{{end}}
        </select>
        {{else}}
        <input id="product_id" name="product_id" value="{{.Form.ProductID}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 sm:text-sm">
        {{end}}
        {{with fieldError .Errors "product_id"}}<p class="mt-1 text-sm text-red-600">Product {{.}}</p>{{end}}
    </div>
    {{template "field" dict "Name" "reaction" "Label" "Reaction" "Value" .Form.Reaction "Errors" .Errors}}
    {{template "field" dict "Name" "rating" "Label" "Rating (1-10)" "Type" "number" "Value" .Form.Rating "Errors" .Errors}}
    <label class="flex items-center gap-2 text-sm text-gray-700">
        <input type="checkbox" name="survival_status" {{if .Form.SurvivalStatus}}checked{{end}}> Product survived the test
    </label>
    <div class="flex justify-end">
        <button type="submit" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Save</button>
    </div>
</form>
{{end}}`,

	"product_test_form": `{{define "content"}}
<div class="max-w-2xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Edit test of {{.Test.ProductName}}</h1>
    {{template "product_test_fields" dict "Action" (printf "/product-tests/%s/edit" .Test.ID) "Form" .Form "Products" .Products "Errors" .Errors}}
</div>
{{end}}`,

	"users": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Users</h1>
    {{template "search" .Table}}
    <div class="bg-white shadow rounded-lg overflow-hidden mb-8">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50"><tr>
                {{template "sort_header" dict "T" .Table "Key" "name" "Label" "Name"}}
                {{template "sort_header" dict "T" .Table "Key" "email" "Label" "Email"}}
                {{template "sort_header" dict "T" .Table "Key" "role" "Label" "Role"}}
                <th class="px-6 py-3"></th>
            </tr></thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Users}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Email}}</td>
                    <td class="px-6 py-4 text-sm"><span class="px-2 py-0.5 rounded text-xs {{roleBadge .Role}}">{{.Role}}</span></td>
                    <td class="px-6 py-4 text-sm text-right space-x-2">
                        <a href="/users-management/{{.ID}}/edit" class="text-pink-600 hover:text-pink-500">Edit</a>
                        {{if ne .ID $.Identity.ID}}
                        <form action="/users-management/{{.ID}}/delete" method="POST" class="inline"><button type="submit" class="text-red-600 hover:text-red-500">Delete</button></form>
                        {{end}}
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="4" class="px-6 py-8 text-center text-sm text-gray-500">No users found.</td></tr>
                {{end}}
            </tbody>
        </table>
        {{template "pager" .Table}}
    </div>
    <h2 class="text-lg font-medium text-gray-900 mb-4">New user</h2>
    {{template "user_fields" dict "Action" "/users-management" "Form" .Form "Roles" .Roles "Errors" .Errors}}
</div>
{{end}}`,

	"components/user_fields": `{{define "user_fields"}}
<form action="{{.Action}}" method="POST" class="bg-white shadow rounded-lg p-6 space-y-4 max-w-2xl">
    {{template "field" dict "Name" "name" "Label" "Name" "Value" .Form.Name "Errors" .Errors}}
    {{template "field" dict "Name" "email" "Label" "Email" "Type" "email" "Value" .Form.Email "Errors" .Errors}}
    {{template "field" dict "Name" "password" "Label" "Password" "Type" "password" "Value" "" "Errors" .Errors}}
    <div>
        <label for="role" class="block text-sm font-medium text-gray-700">Role</label>
        <select id="role" name="role" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 sm:text-sm">
            {{$sel := .Form.Role}}
            {{range .Roles}}<option value="{{.}}" {{if eq (print .) $sel}}selected{{end}}>{{.}}</option>{{end}}
        </select>
        {{with fieldError .Errors "role"}}<p class="mt-1 text-sm text-red-600">Role {{.}}</p>{{end}}
    </div>
    <label class="flex items-center gap-2 text-sm text-gray-700">
        <input type="checkbox" name="test_subject_status" {{if .Form.TestSubjectStatus}}checked{{end}}> Test subject
    </label>
    {{template "field" dict "Name" "allergic_reactions" "Label" "Allergic reactions" "Value" .Form.AllergicReactions "Errors" .Errors}}
    <div class="flex justify-end">
        <button type="submit" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Save</button>
    </div>
</form>
{{end}}`,

	"user_form": `{{define "content"}}
<div class="max-w-2xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Edit {{.User.Email}}</h1>
    {{template "user_fields" dict "Action" (printf "/users-management/%s/edit" .User.ID) "Form" .Form "Roles" .Roles "Errors" .Errors}}
</div>
{{end}}`,

	"orders": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Orders</h1>
        <span class="text-sm text-gray-500">Paid revenue {{money .Revenue}}</span>
    </div>
    {{template "search" .Table}}
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50"><tr>
                {{template "sort_header" dict "T" .Table "Key" "id" "Label" "Order"}}
                {{template "sort_header" dict "T" .Table "Key" "client" "Label" "Client"}}
                {{template "sort_header" dict "T" .Table "Key" "products" "Label" "Products"}}
                {{template "sort_header" dict "T" .Table "Key" "total_amount" "Label" "Total"}}
                {{template "sort_header" dict "T" .Table "Key" "payment_status" "Label" "Payment"}}
                <th class="px-6 py-3"></th>
            </tr></thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Orders}}
                {{$order := .}}
                <tr>
                    <td class="px-6 py-4 text-sm font-mono text-gray-900">{{truncate .ID 12}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.ClientName}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{truncate (join .Products.Names ", ") 60}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{money .TotalAmount}}</td>
                    <td class="px-6 py-4 text-sm"><span class="px-2 py-0.5 rounded text-xs {{statusColor .PaymentStatus}}">{{.PaymentStatus}}</span></td>
                    <td class="px-6 py-4 text-sm text-right">
                        <form action="/orders-management/{{.ID}}/status" method="POST" class="inline-flex gap-1">
                            <select name="payment_status" class="rounded border border-gray-300 text-xs px-1">
                                {{range $.Statuses}}<option value="{{.}}" {{if eq . $order.PaymentStatus}}selected{{end}}>{{.}}</option>{{end}}
                            </select>
                            <button type="submit" class="text-pink-600 hover:text-pink-500">Set</button>
                        </form>
                        <form action="/orders-management/{{.ID}}/delete" method="POST" class="inline"><button type="submit" class="text-red-600 hover:text-red-500">Delete</button></form>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No orders found.</td></tr>
                {{end}}
            </tbody>
        </table>
        {{template "pager" .Table}}
    </div>
</div>
{{end}}`,

	"profile": `{{define "content"}}
<div class="max-w-2xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Profile</h1>
    <form action="/profile" method="POST" class="bg-white shadow rounded-lg p-6 space-y-4">
        {{template "field" dict "Name" "name" "Label" "Name" "Value" .Form.Name "Errors" .Errors}}
        {{template "field" dict "Name" "email" "Label" "Email" "Type" "email" "Value" .Form.Email "Errors" .Errors}}
        {{template "field" dict "Name" "password" "Label" "New password" "Type" "password" "Value" "" "Errors" .Errors}}
        {{template "field" dict "Name" "confirm" "Label" "Confirm password" "Type" "password" "Value" "" "Errors" .Errors}}
        <label class="flex items-center gap-2 text-sm text-gray-700">
            <input type="checkbox" name="test_subject_status" {{if .Form.TestSubjectStatus}}checked{{end}}> I volunteer as a test subject
        </label>
        {{template "field" dict "Name" "allergic_reactions" "Label" "Allergic reactions" "Value" .Form.AllergicReactions "Errors" .Errors}}
        <div class="flex justify-end">
            <button type="submit" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"shop": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Shop</h1>
        <a href="/cart" class="text-sm text-pink-600 hover:text-pink-500">Cart ({{.CartCount}})</a>
    </div>
    {{template "search" .Table}}
    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-3">
        {{range .Products}}
        <div class="bg-white shadow rounded-lg p-5">
            <h3 class="text-lg font-medium text-gray-900">{{.Name}}</h3>
            <p class="text-sm text-gray-500">{{.Category}}</p>
            <p class="mt-2 text-xl font-semibold text-gray-900">{{money .Price}}</p>
            {{if gt .Stock 0}}
            <form action="/cart/add" method="POST" class="mt-4 flex gap-2">
                <input type="hidden" name="product_id" value="{{.ID}}">
                <input type="number" name="quantity" value="1" min="1" max="{{.Stock}}" class="w-20 rounded-md border border-gray-300 px-2 py-1 text-sm">
                <button type="submit" class="px-3 py-1 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Add to cart</button>
            </form>
            {{else}}
            <p class="mt-4 text-sm text-red-600">Out of stock</p>
            {{end}}
        </div>
        {{else}}
        <p class="text-sm text-gray-500">No products found.</p>
        {{end}}
    </div>
    <div class="mt-6 bg-white shadow rounded-lg">{{template "pager" .Table}}</div>
</div>
{{end}}`,

	"cart": `{{define "content"}}
<div class="max-w-3xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Cart</h1>
    {{if .Cart.Items}}
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <tbody class="divide-y divide-gray-200">
                {{range .Cart.Items}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Quantity}} x {{money .Price}}</td>
                    <td class="px-6 py-4 text-sm text-gray-900">{{money .Subtotal}}</td>
                    <td class="px-6 py-4 text-sm text-right">
                        <form action="/cart/remove" method="POST"><input type="hidden" name="product_id" value="{{.ProductID}}"><button type="submit" class="text-red-600 hover:text-red-500">Remove</button></form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
        <div class="flex justify-between items-center px-6 py-4 border-t">
            <span class="text-lg font-semibold">Total {{money .Cart.Total}}</span>
            <form action="/cart/clear" method="POST" class="ml-auto mr-4"><button type="submit" class="text-sm text-gray-500 hover:text-gray-700">Clear</button></form>
            <form action="/cart/checkout" method="POST"><button type="submit" class="px-4 py-2 rounded-md text-sm text-white bg-pink-600 hover:bg-pink-700">Checkout</button></form>
        </div>
    </div>
    {{else}}
    <p class="text-sm text-gray-500">Your cart is empty. <a href="/shop" class="text-pink-600 hover:text-pink-500">Go shopping</a></p>
    {{end}}
</div>
{{end}}`,

	"purchases": `{{define "content"}}
<div class="max-w-3xl mx-auto px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">My Purchases</h1>
    {{range .Purchases}}
    <div class="bg-white shadow rounded-lg p-5 mb-4">
        <div class="flex justify-between text-sm text-gray-500 mb-2">
            <span class="font-mono">{{truncate .ID 12}}</span>
            <span title="{{formatTime .CreatedAt}}">{{ago .CreatedAt}}</span>
        </div>
        <ul class="text-sm text-gray-900">
            {{range .Items}}<li>{{.Quantity}} x {{.Product.Name}}</li>{{end}}
        </ul>
    </div>
    {{else}}
    <p class="text-sm text-gray-500">No purchases yet.</p>
    {{end}}
</div>
{{end}}`,
}
