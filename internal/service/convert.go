package service

import (
	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/pkg/api"
)

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIBill(b *models.Bill) api.Bill {
	out := api.Bill{
		ID:         b.ID,
		Title:      b.Title,
		Restaurant: b.Restaurant,
		PayerID:    b.PayerID,
		Total:      b.Total,
		CreatedAt:  b.CreatedAt,
	}
	for _, item := range b.Items {
		out.Items = append(out.Items, api.Item{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	for _, p := range b.People {
		out.People = append(out.People, api.Person{
			ID:         p.ID,
			Name:       p.Name,
			BaseAmount: p.BaseAmount,
		})
	}
	return out
}

func toAPISession(s assignment.State) api.Session {
	snap := s.Snapshot()
	out := api.Session{
		Holdings: make([]api.Holding, 0, len(snap.Holdings)),
		Claims:   make([]api.Claim, 0, len(snap.Claims)),
	}
	for _, h := range snap.Holdings {
		out.Holdings = append(out.Holdings, api.Holding{PersonID: h.PersonID, ItemIDs: h.ItemIDs})
	}
	for _, c := range snap.Claims {
		out.Claims = append(out.Claims, api.Claim{ItemID: c.ItemID, PersonID: c.PersonID, Units: c.Units})
	}
	return out
}

func toAPIInfo(s assignment.State, item models.Item) api.AssignmentInfo {
	info := s.Info(item.ID)
	out := api.AssignmentInfo{
		ItemID:     item.ID,
		People:     info.People,
		Count:      info.Count,
		IsAssigned: info.IsAssigned,
		IsShared:   info.IsShared,
	}
	if out.People == nil {
		out.People = []string{}
	}
	if item.IsMultiUnit() {
		out.Remaining = s.Remaining(item)
	}
	return out
}

func toAPISplits(splits []calculator.PersonSplit) []api.PersonSplit {
	out := make([]api.PersonSplit, 0, len(splits))
	for _, split := range splits {
		ps := api.PersonSplit{
			PersonID: split.PersonID,
			Name:     split.Name,
			Subtotal: split.Subtotal,
			Base:     split.Base,
			Tax:      split.Tax,
			Total:    split.Total,
		}
		for _, item := range split.Items {
			ps.Items = append(ps.Items, api.PersonItem{
				ItemID: item.ItemID,
				Name:   item.Name,
				Units:  item.Units,
				Amount: item.Amount,
			})
		}
		out = append(out, ps)
	}
	return out
}

func toAPIFriend(f *models.Friend) api.Friend {
	return api.Friend{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt}
}

func toAPIPayment(p *models.Payment) api.Payment {
	return api.Payment{
		ID:           p.ID,
		BillID:       p.BillID,
		FromPersonID: p.FromPersonID,
		ToPersonID:   p.ToPersonID,
		Amount:       p.Amount,
		Note:         p.Note,
		CreatedAt:    p.CreatedAt,
	}
}
