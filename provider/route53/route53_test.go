package route53_test

import (
	"context"
	"errors"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	r53 "github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gocache "github.com/patrickmn/go-cache"

	ddns "github.com/Travis-Britz/dns-agent"
	"github.com/Travis-Britz/dns-agent/provider/route53"
	"github.com/Travis-Britz/dns-agent/provider/route53/route53fakes"
)

func recordSet(name string, rtype r53types.RRType, values ...string) r53types.ResourceRecordSet {
	set := r53types.ResourceRecordSet{
		Name: awssdk.String(name),
		Type: rtype,
		TTL:  awssdk.Int64(60),
	}
	for _, v := range values {
		set.ResourceRecords = append(set.ResourceRecords, r53types.ResourceRecord{Value: awssdk.String(v)})
	}
	return set
}

var _ = Describe("Backend", func() {
	var (
		ctx     context.Context
		api     *route53fakes.FakeAPI
		backend *route53.Backend
	)

	BeforeEach(func() {
		ctx = context.Background()
		api = &route53fakes.FakeAPI{}
		api.ListResourceRecordSetsReturns(&r53.ListResourceRecordSetsOutput{}, nil)
		api.ChangeResourceRecordSetsReturns(&r53.ChangeResourceRecordSetsOutput{
			ChangeInfo: &r53types.ChangeInfo{Id: awssdk.String("C123"), Status: r53types.ChangeStatusPending},
		}, nil)

		var err error
		backend, err = route53.New("Example.com.", api, route53.WithHostedZoneID("/hostedzone/Z123"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("normalizes the zone name", func() {
		Expect(backend.Zone()).To(Equal("example.com"))
	})

	Describe("ZoneRecords", func() {
		It("reports every value of a set as its own record", func() {
			api.ListResourceRecordSetsReturns(&r53.ListResourceRecordSetsOutput{
				ResourceRecordSets: []r53types.ResourceRecordSet{
					recordSet("example.com.", r53types.RRTypeNs, "ns-1.awsdns-00.com.", "ns-2.awsdns-00.net."),
					recordSet("host.example.com.", r53types.RRTypeA, "10.0.0.1"),
					recordSet("multi.example.com.", r53types.RRTypeA, "10.0.0.2", "10.0.0.3"),
					recordSet(`\052.example.com.`, r53types.RRTypeAaaa, "2001:db8::1"),
				},
			}, nil)

			records, err := backend.ZoneRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(Equal([]ddns.ProviderRecord{
				{Name: "@", Type: ddns.NS, Data: "ns-1.awsdns-00.com."},
				{Name: "@", Type: ddns.NS, Data: "ns-2.awsdns-00.net."},
				{Name: "host", Type: ddns.A, Data: "10.0.0.1"},
				{Name: "multi", Type: ddns.A, Data: "10.0.0.2"},
				{Name: "multi", Type: ddns.A, Data: "10.0.0.3"},
				{Name: "*", Type: ddns.AAAA, Data: "2001:db8::1"},
			}))

			_, input, _ := api.ListResourceRecordSetsArgsForCall(0)
			Expect(awssdk.ToString(input.HostedZoneId)).To(Equal("Z123"))
		})

		It("skips alias and routing policy sets", func() {
			alias := recordSet("www.example.com.", r53types.RRTypeA)
			alias.AliasTarget = &r53types.AliasTarget{DNSName: awssdk.String("lb.example.net.")}
			weighted := recordSet("host.example.com.", r53types.RRTypeA, "10.0.0.9")
			weighted.SetIdentifier = awssdk.String("blue")
			api.ListResourceRecordSetsReturns(&r53.ListResourceRecordSetsOutput{
				ResourceRecordSets: []r53types.ResourceRecordSet{alias, weighted},
			}, nil)

			records, err := backend.ZoneRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})

		It("follows pagination", func() {
			api.ListResourceRecordSetsReturnsOnCall(0, &r53.ListResourceRecordSetsOutput{
				ResourceRecordSets: []r53types.ResourceRecordSet{recordSet("a.example.com.", r53types.RRTypeA, "10.0.0.1")},
				IsTruncated:        true,
				NextRecordName:     awssdk.String("b.example.com."),
				NextRecordType:     r53types.RRTypeA,
			}, nil)
			api.ListResourceRecordSetsReturnsOnCall(1, &r53.ListResourceRecordSetsOutput{
				ResourceRecordSets: []r53types.ResourceRecordSet{recordSet("b.example.com.", r53types.RRTypeA, "10.0.0.2")},
			}, nil)

			records, err := backend.ZoneRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(api.ListResourceRecordSetsCallCount()).To(Equal(2))

			_, input, _ := api.ListResourceRecordSetsArgsForCall(1)
			Expect(awssdk.ToString(input.StartRecordName)).To(Equal("b.example.com."))
			Expect(input.StartRecordType).To(Equal(r53types.RRTypeA))
		})

		When("the API fails", func() {
			It("returns a transport error", func() {
				api.ListResourceRecordSetsReturns(nil, errors.New("throttled"))

				_, err := backend.ZoneRecords(ctx)
				Expect(errors.Is(err, &ddns.TransportError{})).To(BeTrue())
			})
		})
	})

	Describe("CreateRecord", func() {
		It("creates a single value set", func() {
			err := backend.CreateRecord(ctx, ddns.ProviderRecord{Name: "host", Type: ddns.AAAA, Data: "2001:db8::1"})
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ChangeResourceRecordSetsCallCount()).To(Equal(1))
			_, input, _ := api.ChangeResourceRecordSetsArgsForCall(0)
			Expect(awssdk.ToString(input.HostedZoneId)).To(Equal("Z123"))
			Expect(input.ChangeBatch.Changes).To(HaveLen(1))

			change := input.ChangeBatch.Changes[0]
			Expect(change.Action).To(Equal(r53types.ChangeActionCreate))
			Expect(awssdk.ToString(change.ResourceRecordSet.Name)).To(Equal("host.example.com."))
			Expect(change.ResourceRecordSet.Type).To(Equal(r53types.RRTypeAaaa))
			Expect(awssdk.ToInt64(change.ResourceRecordSet.TTL)).To(Equal(int64(300)))
			Expect(change.ResourceRecordSet.ResourceRecords).To(HaveLen(1))
			Expect(awssdk.ToString(change.ResourceRecordSet.ResourceRecords[0].Value)).To(Equal("2001:db8::1"))
		})

		It("creates apex records on the zone name", func() {
			Expect(backend.CreateRecord(ctx, ddns.ProviderRecord{Name: "@", Type: ddns.A, Data: "10.0.0.1"})).To(Succeed())
			_, input, _ := api.ChangeResourceRecordSetsArgsForCall(0)
			Expect(awssdk.ToString(input.ChangeBatch.Changes[0].ResourceRecordSet.Name)).To(Equal("example.com."))
		})

		It("rejects unsupported types without calling the API", func() {
			err := backend.CreateRecord(ctx, ddns.ProviderRecord{Name: "host", Type: ddns.TXT, Data: "hello"})
			Expect(errors.Is(err, &ddns.UnsupportedRecordTypeError{})).To(BeTrue())
			Expect(api.Invocations()).To(BeEmpty())
		})
	})

	Describe("UpdateRecord", func() {
		existing := ddns.ProviderRecord{Name: "host", Type: ddns.A, Data: "10.0.0.1"}

		BeforeEach(func() {
			api.ListResourceRecordSetsReturns(&r53.ListResourceRecordSetsOutput{
				ResourceRecordSets: []r53types.ResourceRecordSet{
					recordSet("host.example.com.", r53types.RRTypeAaaa, "2001:db8::1"),
					recordSet("host.example.com.", r53types.RRTypeA, "10.0.0.1"),
				},
			}, nil)
		})

		It("replaces the set in one batch", func() {
			Expect(backend.UpdateRecord(ctx, existing, "10.0.0.2")).To(Succeed())

			Expect(api.ListResourceRecordSetsCallCount()).To(Equal(1))
			Expect(api.ChangeResourceRecordSetsCallCount()).To(Equal(1))
			_, input, _ := api.ChangeResourceRecordSetsArgsForCall(0)
			changes := input.ChangeBatch.Changes
			Expect(changes).To(HaveLen(2))

			Expect(changes[0].Action).To(Equal(r53types.ChangeActionDelete))
			Expect(awssdk.ToString(changes[0].ResourceRecordSet.ResourceRecords[0].Value)).To(Equal("10.0.0.1"))
			Expect(awssdk.ToInt64(changes[0].ResourceRecordSet.TTL)).To(Equal(int64(60)))

			Expect(changes[1].Action).To(Equal(r53types.ChangeActionCreate))
			Expect(changes[1].ResourceRecordSet.Type).To(Equal(r53types.RRTypeA))
			Expect(awssdk.ToString(changes[1].ResourceRecordSet.ResourceRecords[0].Value)).To(Equal("10.0.0.2"))
			Expect(awssdk.ToInt64(changes[1].ResourceRecordSet.TTL)).To(Equal(int64(60)))
		})

		When("the record is gone", func() {
			It("returns a vanished error", func() {
				err := backend.UpdateRecord(ctx, ddns.ProviderRecord{Name: "host", Type: ddns.A, Data: "10.9.9.9"}, "10.0.0.2")
				var vanished *ddns.RecordVanishedError
				Expect(errors.As(err, &vanished)).To(BeTrue())
				Expect(vanished.Name).To(Equal("host"))
				Expect(api.ChangeResourceRecordSetsCallCount()).To(BeZero())
			})
		})

		When("the set changed before the batch was applied", func() {
			It("returns a vanished error", func() {
				api.ChangeResourceRecordSetsReturns(nil, &smithy.GenericAPIError{
					Code:    "InvalidChangeBatch",
					Message: "Tried to delete resource record set but it was not found",
				})

				err := backend.UpdateRecord(ctx, existing, "10.0.0.2")
				Expect(errors.Is(err, &ddns.RecordVanishedError{})).To(BeTrue())
			})
		})

		When("the API fails for another reason", func() {
			It("returns a transport error", func() {
				api.ChangeResourceRecordSetsReturns(nil, &smithy.GenericAPIError{Code: "Throttling"})

				err := backend.UpdateRecord(ctx, existing, "10.0.0.2")
				Expect(errors.Is(err, &ddns.TransportError{})).To(BeTrue())
				Expect(errors.Is(err, &ddns.RecordVanishedError{})).To(BeFalse())
			})
		})
	})

	Describe("hosted zone lookup", func() {
		var cache *gocache.Cache

		BeforeEach(func() {
			cache = gocache.New(time.Minute, time.Minute)
			var err error
			backend, err = route53.New("example.com", api, route53.WithCache(cache))
			Expect(err).NotTo(HaveOccurred())
		})

		It("looks up the zone once and caches it", func() {
			api.ListHostedZonesByNameReturns(&r53.ListHostedZonesByNameOutput{
				HostedZones: []r53types.HostedZone{{Id: awssdk.String("/hostedzone/Z999"), Name: awssdk.String("example.com.")}},
			}, nil)

			_, err := backend.ZoneRecords(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = backend.ZoneRecords(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ListHostedZonesByNameCallCount()).To(Equal(1))
			_, input, _ := api.ListResourceRecordSetsArgsForCall(1)
			Expect(awssdk.ToString(input.HostedZoneId)).To(Equal("Z999"))
		})

		When("the closest zone has a different name", func() {
			It("returns HostedZoneNotFoundError", func() {
				api.ListHostedZonesByNameReturns(&r53.ListHostedZonesByNameOutput{
					HostedZones: []r53types.HostedZone{{Id: awssdk.String("/hostedzone/Z1"), Name: awssdk.String("example.net.")}},
				}, nil)

				_, err := backend.ZoneRecords(ctx)
				Expect(errors.Is(err, &route53.HostedZoneNotFoundError{})).To(BeTrue())
				Expect(api.ListResourceRecordSetsCallCount()).To(BeZero())
			})
		})
	})
})
